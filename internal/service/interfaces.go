// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service composes the URL builder, the remote fetcher and the env
// file storage into the fetch-config operation.
package service

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/models"
)

// FetchService issues one request per namespace URL concurrently and merges
// the results in URL order.
type FetchService interface {
	Fetch(ctx context.Context, urls []string) (*models.Configurations, error)
}

type ConfigService interface {
	// FetchConfig builds the namespace URLs of req, fetches and merges them
	// and, when req asks for it, materializes the result as an env file.
	FetchConfig(ctx context.Context, req models.ConfigRequest) (*models.Configurations, error)

	CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error
	SetEnv(ctx context.Context, fileName string) error
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}
