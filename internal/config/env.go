package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment is the source of environment variables for configuration loading
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads from the process environment
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is a fixed set of variables
type MapEnvironment map[string]string

func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// LayeredEnvironment consults Primary first and Fallback second, so values
// already exported in the shell win over the ones found in dotenv files.
type LayeredEnvironment struct {
	Primary  Environment
	Fallback Environment
}

func (l LayeredEnvironment) LookupEnv(key string) (string, bool) {
	if l.Primary != nil {
		if v, ok := l.Primary.LookupEnv(key); ok {
			return v, true
		}
	}
	if l.Fallback != nil {
		return l.Fallback.LookupEnv(key)
	}
	return "", false
}

// DotEnvFiles are read from the project root in this order; later files win
var DotEnvFiles = []string{".env", ".env.local"}

// ReadDotEnv reads the project's dotenv files without touching the process
// environment. It returns the merged variables and the files that were read.
// A file that cannot be parsed is skipped with a warning.
func ReadDotEnv(projectRoot string, log *slog.Logger) (MapEnvironment, []string) {
	if log == nil {
		log = slog.Default()
	}

	vars := MapEnvironment{}
	loaded := []string{}

	for _, name := range DotEnvFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			// Log warning but don't fail
			log.Warn("failed to load dotenv file, skipping", "file", path, "error", err)
			continue
		}
		for k, v := range values {
			vars[k] = v
		}
		loaded = append(loaded, path)
	}

	return vars, loaded
}

// expand replaces ${VAR} and $VAR references using env. Unset variables
// expand to the empty string, as with os.ExpandEnv.
func expand(value string, env Environment) string {
	return os.Expand(value, func(key string) string {
		v, _ := env.LookupEnv(key)
		return v
	})
}
