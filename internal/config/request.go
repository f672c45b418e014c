package config

import (
	"strings"

	"github.com/MKhiriev/go-apollo-env/models"
)

// Request converts the merged configuration into a config request.
// Namespace entries are trimmed and blanks dropped; an env file output is
// selected only when EnvFile.Create is true.
func (cfg *StructuredConfig) Request() models.ConfigRequest {
	req := models.ConfigRequest{
		AppID:           strings.TrimSpace(cfg.Apollo.AppID),
		ClusterName:     strings.TrimSpace(cfg.Apollo.ClusterName),
		ConfigServerURL: strings.TrimSpace(cfg.Apollo.ConfigServerURL),
		Namespaces:      normalizeNamespaces(cfg.Apollo.Namespaces),
		ClientIP:        strings.TrimSpace(cfg.Apollo.ClientIP),
		IsCache:         deref(cfg.Apollo.IsCache, false),
		ReleaseKey:      strings.TrimSpace(cfg.Apollo.ReleaseKey),
		Output:          models.NoEnvFile{},
	}

	if deref(cfg.EnvFile.Create, false) {
		envFile := models.NewEnvFile(strings.TrimSpace(cfg.EnvFile.Name))
		envFile.SetEnv = deref(cfg.EnvFile.SetEnv, true)
		envFile.BeforeClear = deref(cfg.EnvFile.BeforeClear, true)
		req.Output = envFile
	}

	return req
}

func normalizeNamespaces(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

func deref(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
