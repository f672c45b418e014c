package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// RealWorkingDir returns the current working directory with every symlink
// resolved.
func RealWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(wd)
	if err != nil {
		return "", fmt.Errorf("resolve working directory %q: %w", wd, err)
	}

	return resolved, nil
}
