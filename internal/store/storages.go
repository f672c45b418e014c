package store

import (
	"fmt"

	"github.com/MKhiriev/go-apollo-env/internal/config"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/utils"
)

// Storages groups the storage backends used by the services.
type Storages struct {
	EnvFileStorage EnvFileStorage
}

// NewStorages builds the storages from cfg. An empty cfg.BaseDir resolves
// to the symlink-resolved working directory at the time of the call.
func NewStorages(cfg config.EnvFile, log *logger.Logger) (*Storages, error) {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := utils.RealWorkingDir()
		if err != nil {
			return nil, fmt.Errorf("resolve env file base dir: %w", err)
		}
		baseDir = wd
	}

	return &Storages{
		EnvFileStorage: NewEnvFileStorage(baseDir, log),
	}, nil
}
