// Package config provides configuration loading for the prebuild CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// BuildToolGradle writes bundle dependencies into build.gradle.
	BuildToolGradle = "gradle"
	// BuildToolNone skips the dependency stage of pre-compile.
	BuildToolNone = "none"

	// DefaultGradleFile is the project-relative build script.
	DefaultGradleFile = "build.gradle"
)

// Config represents the prebuild CLI configuration.
// Loaded from ~/.config/prebuild/config.yaml and PREBUILD_* variables.
type Config struct {
	// BuildTool selects the build tool bundles contribute to.
	// Env: PREBUILD_BUILD_TOOL, Default: "gradle"
	BuildTool string `mapstructure:"build_tool"`

	// GradleFile is the build script path, relative to the project.
	// Env: PREBUILD_GRADLE_FILE, Default: "build.gradle"
	GradleFile string `mapstructure:"gradle_file"`

	// CacheDir holds the import rewrite ledger.
	// Env: PREBUILD_CACHE_DIR, Default: $XDG_CACHE_HOME/prebuild
	CacheDir string `mapstructure:"cache_dir"`

	// Catalogs are extra bundle catalog files registered after the
	// standard catalog and before the project catalog.
	// Env: PREBUILD_CATALOGS (comma-separated)
	Catalogs []string `mapstructure:"catalogs"`

	// NoCache disables the rewrite ledger.
	// Env: PREBUILD_NO_CACHE
	NoCache bool `mapstructure:"no_cache"`
}

// WithDefaults returns a copy of c with empty fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	out.Catalogs = append([]string(nil), c.Catalogs...)
	if out.BuildTool == "" {
		out.BuildTool = BuildToolGradle
	}
	if out.GradleFile == "" {
		out.GradleFile = DefaultGradleFile
	}
	if out.CacheDir == "" {
		if dir, err := DefaultCacheDir(); err == nil {
			out.CacheDir = dir
		}
	}
	return &out
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.BuildTool) {
	case BuildToolGradle, BuildToolNone, "":
	default:
		return fmt.Errorf("unknown build tool %q (available: %s, %s)", c.BuildTool, BuildToolGradle, BuildToolNone)
	}
	if filepath.IsAbs(c.GradleFile) {
		return fmt.Errorf("gradle_file must be relative to the project: %s", c.GradleFile)
	}
	return nil
}

// UsesGradle reports whether the gradle build tool is selected.
func (c *Config) UsesGradle() bool {
	return strings.EqualFold(c.BuildTool, BuildToolGradle)
}

const appName = "prebuild"

// DefaultConfigFile returns the config file path.
// If PREBUILD_CONFIG is set, it takes precedence.
func DefaultConfigFile() (string, error) {
	if envPath := os.Getenv("PREBUILD_CONFIG"); envPath != "" {
		return envPath, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// DefaultCacheDir returns the cache directory using XDG standard (~/.cache/prebuild/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
