package models

// Output is the post-fetch action of a [ConfigRequest]. It is a closed set:
// [NoEnvFile] and [EnvFile] are the only implementations.
type Output interface {
	isOutput()
}

// NoEnvFile returns the merged configuration without touching the filesystem
// or the process environment.
type NoEnvFile struct{}

func (NoEnvFile) isOutput() {}

// EnvFile writes the merged configuration to a KEY=VALUE file and optionally
// loads that file into the process environment.
type EnvFile struct {
	// Name is the file name, resolved against the fetcher's base directory.
	Name string

	// SetEnv loads the written file into the process environment.
	SetEnv bool

	// BeforeClear removes an existing file before writing. When false the new
	// lines are appended to whatever the file already holds.
	BeforeClear bool
}

func (EnvFile) isOutput() {}

// NewEnvFile returns an [EnvFile] with SetEnv and BeforeClear enabled.
func NewEnvFile(name string) EnvFile {
	return EnvFile{
		Name:        name,
		SetEnv:      true,
		BeforeClear: true,
	}
}
