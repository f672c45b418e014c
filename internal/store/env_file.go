package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/models"
	"github.com/joho/godotenv"
)

const envFilePerm = 0o644

type envFileStorage struct {
	baseDir string

	logger *logger.Logger
}

// NewEnvFileStorage returns an [EnvFileStorage] rooted at baseDir.
func NewEnvFileStorage(baseDir string, log *logger.Logger) EnvFileStorage {
	if log == nil {
		log = logger.Nop()
	}

	return &envFileStorage{baseDir: baseDir, logger: log}
}

// Path implements [EnvFileStorage].
func (s *envFileStorage) Path(fileName string) string {
	return filepath.Join(s.baseDir, fileName)
}

// CreateEnvFile implements [EnvFileStorage]. Values are written verbatim,
// without quoting or escaping. An empty mapping still leaves an (empty)
// file behind.
func (s *envFileStorage) CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) (err error) {
	if strings.TrimSpace(fileName) == "" {
		return ErrEmptyFileName
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	path := s.Path(fileName)
	if clear {
		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: remove %s: %w", ErrFilesystem, path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, envFilePerm)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrFilesystem, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrFilesystem, path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	for key, value := range cfgs.All() {
		if _, err = fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrFilesystem, path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrFilesystem, path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("keys", cfgs.Len()).
		Bool("cleared", clear).
		Msg("env file written")

	return nil
}

// SetEnv implements [EnvFileStorage] on top of godotenv.Load, which never
// overrides a variable that is already set.
func (s *envFileStorage) SetEnv(ctx context.Context, fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrEmptyFileName
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(fileName)
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: load %s: %w", ErrFilesystem, path, err)
	}

	s.logger.Debug().Str("path", path).Msg("env file loaded")
	return nil
}
