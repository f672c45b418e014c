// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable before
// a request is built from it.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* values otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Apollo.AppID) == "" {
		return fmt.Errorf("%w: app id is empty", ErrInvalidApolloConfigs)
	}
	if strings.TrimSpace(cfg.Apollo.ClusterName) == "" {
		return fmt.Errorf("%w: cluster name is empty", ErrInvalidApolloConfigs)
	}
	if strings.TrimSpace(cfg.Apollo.ConfigServerURL) == "" {
		return fmt.Errorf("%w: config server url is empty", ErrInvalidApolloConfigs)
	}

	if deref(cfg.EnvFile.Create, false) && strings.TrimSpace(cfg.EnvFile.Name) == "" {
		return fmt.Errorf("%w: env file name is empty", ErrInvalidEnvFileConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
