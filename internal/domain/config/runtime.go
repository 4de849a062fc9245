package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network string // default network for single-network commands, may be empty
	Format  string // default export format, may be empty

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration
	ProbeTimeout   time.Duration // per-network RPC probe bound

	// Where the project configuration came from
	Sources ConfigSources

	// Resolved configuration
	Project *ProjectConfig
	Env     EnvLookup // environment the project config was resolved against
}

// EnvLookup reads environment variables
type EnvLookup interface {
	LookupEnv(key string) (string, bool)
}

// ConfigSources records the inputs that produced the project configuration
type ConfigSources struct {
	OverrideFile string   `json:"overrideFile,omitempty" yaml:"overrideFile,omitempty"` // empty when no toolcfg.toml was found
	EnvFiles     []string `json:"envFiles" yaml:"envFiles"`                             // dotenv files that were read
}
