// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apolloenv fetches configuration from an Apollo config server and
// optionally materializes it as an env file loaded into the process
// environment.
//
// A request names the application, cluster and config server, plus any number
// of namespaces. Every namespace is fetched concurrently and the results are
// merged in namespace order, later namespaces winning on key collision:
//
//	cfgs, err := apolloenv.FetchConfig(ctx, models.ConfigRequest{
//		AppID:           "billing",
//		ClusterName:     "default",
//		ConfigServerURL: "http://apollo-config:8080",
//		Namespaces:      models.Namespaces("application", "db"),
//		Output:          models.NewEnvFile(".env"),
//	})
//
// Failures are returned as errors that match, through [errors.Is], one of:
//
//   - [ErrMissingRequiredField] or [ErrInvalidConfigServerURL] for a
//     malformed request, reported before any request is sent;
//   - [ErrRemoteFetch] for any failed request, [ErrNotModified] included;
//   - [ErrFilesystem] or [ErrEmptyFileName] for env file failures;
//   - the context's error when ctx is done before the env file is touched.
package apolloenv
