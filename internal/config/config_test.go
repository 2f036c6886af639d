package config

import (
	"path/filepath"
	"testing"
)

func TestFromEnviron(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name    string
		environ []string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			environ: nil,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Verbose || cfg.Debug || cfg.NoColor {
					t.Errorf("unexpected flags: %+v", cfg)
				}
				if !cfg.ExitOnFailure {
					t.Error("exit on failure should default to true")
				}
				if cfg.LogFile != filepath.Join("/home/tester", ".cmdkit", "logs", "cmdkit.log") {
					t.Errorf("LogFile = %q", cfg.LogFile)
				}
				if cfg.CrashDir != filepath.Join("/home/tester", ".cmdkit", "crashes") {
					t.Errorf("CrashDir = %q", cfg.CrashDir)
				}
			},
		},
		{
			name:    "weakly typed booleans",
			environ: []string{"CMDKIT_VERBOSE=1", "CMDKIT_DEBUG=TRUE", "CMDKIT_EXIT_ON_FAILURE=false", "PATH=/bin"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Verbose || !cfg.Debug || cfg.ExitOnFailure {
					t.Errorf("unexpected flags: %+v", cfg)
				}
			},
		},
		{
			name:    "no color takes any value",
			environ: []string{"NO_COLOR=yes please"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.NoColor {
					t.Error("NO_COLOR should disable colors")
				}
			},
		},
		{
			name:    "empty no color is ignored",
			environ: []string{"NO_COLOR="},
			check: func(t *testing.T, cfg *Config) {
				if cfg.NoColor {
					t.Error("empty NO_COLOR should keep colors")
				}
			},
		},
		{
			name:    "paths",
			environ: []string{"CMDKIT_LOG_FILE=/tmp/x.log", "CMDKIT_CRASH_DIR=", "CMDKIT_UNKNOWN=1"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LogFile != "/tmp/x.log" {
					t.Errorf("LogFile = %q", cfg.LogFile)
				}
				if cfg.CrashDir == "" {
					t.Error("empty value should keep the default")
				}
			},
		},
		{
			name:    "malformed boolean",
			environ: []string{"CMDKIT_VERBOSE=perhaps"},
			wantErr: true,
			check: func(t *testing.T, cfg *Config) {
				if cfg == nil || !cfg.ExitOnFailure || cfg.Verbose {
					t.Errorf("defaults expected on error, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnviron(tt.environ)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromEnviron() error = %v, wantErr %v", err, tt.wantErr)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("CMDKIT_VERBOSE", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Verbose {
		t.Error("Load should read the process environment")
	}
}

func TestDir_FallsBackToWorkingDir(t *testing.T) {
	t.Setenv("HOME", "")
	if got := Dir(); filepath.Base(got) != ".cmdkit" || got == ".cmdkit" {
		t.Errorf("Dir() = %q", got)
	}
}
