// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to an Apollo
// config server.
//
// The primary abstraction is [ConfigServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP
// implementation built on resty ([NewHTTPConfigServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Every returned error matches [ErrRemoteFetch].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-apollo-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_server_adapter_mock.go -package=mock

// ConfigServerAdapter fetches a single namespace from a config server.
type ConfigServerAdapter interface {
	// FetchNamespace issues one GET against namespaceURL.
	//
	// On HTTP 200 with a JSON object body it returns the decoded key/value
	// pairs and ok == true. Other 2xx statuses, empty bodies and JSON bodies
	// that are not objects return ok == false and a nil error: the namespace
	// contributes nothing. Statuses outside 2xx (304 included), transport
	// failures and bodies that are not JSON return an error.
	FetchNamespace(ctx context.Context, namespaceURL string) (cfgs *models.Configurations, ok bool, err error)
}
