package project

import (
	"strings"

	"github.com/matzehuels/prebuild/pkg/errors"
)

// Environment is the build target a bundle is registered against.
type Environment string

const (
	// EnvAll applies to every environment unless overridden.
	EnvAll Environment = "all"
	// EnvDev is the development build. Only dev builds keep source line
	// numbers stable during import rewriting.
	EnvDev Environment = "dev"
	// EnvProd is the release build.
	EnvProd Environment = "prod"
	// EnvDesktop is the packaged desktop release.
	EnvDesktop Environment = "desktop"
)

// Environments lists the known environments in display order.
var Environments = []Environment{EnvAll, EnvDev, EnvProd, EnvDesktop}

// ParseEnvironment resolves a case-insensitive environment name.
// An empty name yields EnvAll.
func ParseEnvironment(name string) (Environment, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EnvAll, nil
	}
	for _, env := range Environments {
		if string(env) == name {
			return env, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown environment %q (available: all, dev, prod, desktop)", name)
}

// String returns the environment name.
func (e Environment) String() string { return string(e) }

// IsAll reports whether e is the catch-all environment.
func (e Environment) IsAll() bool { return e == EnvAll }
