package config

import (
	"flag"
	"strconv"
	"strings"
	"time"
)

// NamespaceList collects namespaces from a repeatable flag. Each value may
// itself be a comma-separated list.
// It implements the flag.Value interface.
type NamespaceList []string

// String returns the namespaces joined with commas.
func (n *NamespaceList) String() string {
	if n == nil {
		return ""
	}
	return strings.Join(*n, ",")
}

// Set appends every non-blank comma-separated entry of s.
func (n *NamespaceList) Set(s string) error {
	*n = append(*n, normalizeNamespaces([]string{s})...)
	return nil
}

// OptionalBool is a boolean flag that remembers whether it was given at all.
// It implements the flag.Value interface and behaves like flag.Bool on the
// command line (-cache, -cache=false).
type OptionalBool struct {
	value *bool
}

// String returns "true", "false" or "" when the flag was not set.
func (b *OptionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

// Set parses s with strconv.ParseBool.
func (b *OptionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag allows the flag to be used without a value.
func (b *OptionalBool) IsBoolFlag() bool { return true }

// Ptr returns the parsed value, or nil when the flag was not set.
func (b *OptionalBool) Ptr() *bool {
	return b.value
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-app-id application id on the config server
//	-cluster cluster name
//	-server config server base url
//	-namespace namespace to fetch (repeatable, comma-separated)
//	-ip client ip forwarded to the server
//	-cache forward the release key
//	-release-key release key
//	-create-env write the merged configuration to an env file
//	-env-file env file name
//	-set-env load the env file into the process environment
//	-before-clear remove an existing env file before writing
//	-base-dir directory the env file name is resolved against
//	-request-timeout request timeout (e.g., "5s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var appID, clusterName, serverURL string
	var namespaces NamespaceList
	var clientIP, releaseKey string
	var isCache, createEnv, setEnv, beforeClear OptionalBool
	var envFileName, baseDir string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&appID, "app-id", "", "Application id")
	flag.StringVar(&clusterName, "cluster", "", "Cluster name")
	flag.StringVar(&serverURL, "server", "", "Config server url")
	flag.Var(&namespaces, "namespace", "Namespace to fetch (repeatable, comma-separated)")
	flag.StringVar(&clientIP, "ip", "", "Client ip")
	flag.Var(&isCache, "cache", "Send the release key")
	flag.StringVar(&releaseKey, "release-key", "", "Release key")
	flag.Var(&createEnv, "create-env", "Write the merged configuration to an env file")
	flag.StringVar(&envFileName, "env-file", "", "Env file name")
	flag.Var(&setEnv, "set-env", "Load the env file into the environment (default true)")
	flag.Var(&beforeClear, "before-clear", "Remove an existing env file before writing (default true)")
	flag.StringVar(&baseDir, "base-dir", "", "Directory the env file is resolved against")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Apollo: Apollo{
			AppID:           appID,
			ClusterName:     clusterName,
			ConfigServerURL: serverURL,
			Namespaces:      namespaces,
			ClientIP:        clientIP,
			IsCache:         isCache.Ptr(),
			ReleaseKey:      releaseKey,
		},
		EnvFile: EnvFile{
			Create:      createEnv.Ptr(),
			Name:        envFileName,
			SetEnv:      setEnv.Ptr(),
			BeforeClear: beforeClear.Ptr(),
			BaseDir:     baseDir,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
