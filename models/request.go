// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultNamespace is used when a request names no namespace at all.
const DefaultNamespace = "application"

// ConfigRequest describes a single fetch against an Apollo config server.
//
// AppID, ClusterName and ConfigServerURL are required. Every other field is
// optional and its zero value means "not supplied".
type ConfigRequest struct {
	// AppID is the application identifier registered on the config server.
	AppID string `json:"app_id"`

	// ClusterName selects the cluster the configuration belongs to
	// (e.g. "default").
	ClusterName string `json:"cluster"`

	// ConfigServerURL is the base URL of the config service,
	// e.g. "http://apollo-config:8080".
	ConfigServerURL string `json:"config_server_url"`

	// Namespaces lists the namespaces to fetch. Later namespaces override
	// earlier ones on key collision. Nil or empty means [DefaultNamespace].
	Namespaces []string `json:"namespaces,omitempty"`

	// ClientIP is forwarded as the "ip" query parameter when non-empty.
	ClientIP string `json:"client_ip,omitempty"`

	// IsCache enables forwarding of ReleaseKey.
	IsCache bool `json:"cache,omitempty"`

	// ReleaseKey is forwarded as the "releaseKey" query parameter when
	// IsCache is set.
	ReleaseKey string `json:"release_key,omitempty"`

	// Output selects what happens with the merged configuration after it has
	// been fetched. Nil behaves like [NoEnvFile].
	Output Output `json:"-"`
}

// Namespaces builds a namespace list. A single name yields a one-element list.
func Namespaces(names ...string) []string {
	return names
}

// NamespaceList returns the namespaces the request targets, substituting
// [DefaultNamespace] when none were given. The returned slice is a copy.
func (r ConfigRequest) NamespaceList() []string {
	if len(r.Namespaces) == 0 {
		return []string{DefaultNamespace}
	}

	out := make([]string, len(r.Namespaces))
	copy(out, r.Namespaces)
	return out
}

// EnvFileOutput reports whether the request asks for an env file and, if so,
// returns its settings.
func (r ConfigRequest) EnvFileOutput() (EnvFile, bool) {
	switch out := r.Output.(type) {
	case EnvFile:
		return out, true
	case *EnvFile:
		if out == nil {
			return EnvFile{}, false
		}
		return *out, true
	default:
		return EnvFile{}, false
	}
}
