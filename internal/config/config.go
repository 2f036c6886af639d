// Package config provides configuration for the cmdkit binary.
//
// There are no configuration files. Settings come from the environment:
//   - CMDKIT_VERBOSE, CMDKIT_DEBUG: log levels (same as -v / --debug)
//   - CMDKIT_LOG_FILE: debug log destination
//   - CMDKIT_CRASH_DIR: where crash reports are written
//   - CMDKIT_EXIT_ON_FAILURE: exit with status 1 on failures (default true)
//   - NO_COLOR: any non-empty value disables colors
//
// Values are decoded weakly, so "1", "true" and "TRUE" are all accepted for
// booleans.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Config holds runtime settings.
type Config struct {
	Verbose       bool   `env:"CMDKIT_VERBOSE"`
	Debug         bool   `env:"CMDKIT_DEBUG"`
	NoColor       bool   `env:"NO_COLOR"`
	LogFile       string `env:"CMDKIT_LOG_FILE"`
	CrashDir      string `env:"CMDKIT_CRASH_DIR"`
	ExitOnFailure bool   `env:"CMDKIT_EXIT_ON_FAILURE"`
}

// Dir returns the cmdkit state directory (~/.cmdkit).
func Dir() string {
	home := os.Getenv("HOME")
	if home == "" {
		if wd, _ := os.Getwd(); wd != "" {
			return filepath.Join(wd, ".cmdkit")
		}
	}
	return filepath.Join(home, ".cmdkit")
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	dir := Dir()
	return &Config{
		LogFile:       filepath.Join(dir, "logs", "cmdkit.log"),
		CrashDir:      filepath.Join(dir, "crashes"),
		ExitOnFailure: true,
	}
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron decodes a KEY=VALUE list. Unknown keys are ignored. On a
// malformed value the defaults are returned with the error.
func FromEnviron(environ []string) (*Config, error) {
	cfg := Default()

	input := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch key {
		case "NO_COLOR":
			input[key] = value != ""
		case "CMDKIT_LOG_FILE", "CMDKIT_CRASH_DIR":
			if value != "" {
				input[key] = value
			}
		default:
			if strings.HasPrefix(key, "CMDKIT_") {
				input[key] = value
			}
		}
	}

	decoded := *cfg
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "env",
		Result:           &decoded,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(input); err != nil {
		return cfg, fmt.Errorf("invalid environment: %w", err)
	}
	return &decoded, nil
}
