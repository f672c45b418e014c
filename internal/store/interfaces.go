// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists a merged configuration as a flat env file and loads
// such files into the process environment.
package store

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/env_file_storage_mock.go -package=mock

// EnvFileStorage writes and loads KEY=VALUE env files. File names are
// resolved against the storage's base directory.
type EnvFileStorage interface {
	// CreateEnvFile appends one "KEY=VALUE\n" line per entry of cfgs, in
	// insertion order. When clear is true an existing file is removed
	// first; otherwise the lines are appended after its current content.
	CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error

	// SetEnv parses the env file and sets every entry that is not already
	// present in the process environment.
	SetEnv(ctx context.Context, fileName string) error

	// Path returns the absolute location of fileName.
	Path(fileName string) string
}
