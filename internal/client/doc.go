// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the apollo-env command runtime.
//
// It turns the merged command configuration into a config request, runs it
// through the config service and reports the result.
package client
