package bundle

import (
	"slices"

	"github.com/matzehuels/prebuild/pkg/project"
)

// KeyVersion is the config key a [JarBundle] pins its version under.
const KeyVersion = "version"

// Artifact is a Maven artifact a [JarBundle] puts on the classpath.
// An empty Version follows the bundle version.
type Artifact struct {
	Group         string `toml:"group"`
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	Configuration string `toml:"configuration"`
}

// JarBundle wraps jar libraries: it contributes Maven artifacts and local
// jars to the build tool and exposes their PHP classes as use-imports.
type JarBundle struct {
	Base
	Artifacts []Artifact
	// Jars are file names inside the local library repository.
	Jars []string
}

// ApplyDependencies adds every artifact and local jar.
func (b *JarBundle) ApplyDependencies(bt BuildTool) {
	for _, a := range b.Artifacts {
		version := a.Version
		if version == "" {
			version = b.Version()
		}
		bt.AddDependency(Dependency{
			Configuration: configurationOrDefault(a.Configuration),
			Group:         a.Group,
			Name:          a.Name,
			Version:       version,
		})
	}
	for _, jar := range b.Jars {
		bt.AddDependency(Dependency{Configuration: DefaultConfiguration, File: jar})
	}
}

// OnSave records the bundle version.
func (b *JarBundle) OnSave(_ *project.Project, cfg Config) error {
	if v := b.Version(); v != "" {
		cfg.Set(KeyVersion, v)
	}
	return nil
}

// OnLoad restores a pinned version.
func (b *JarBundle) OnLoad(_ *project.Project, cfg Config) error {
	if v, ok := cfg.Get(KeyVersion); ok && v != "" {
		b.Info.Version = v
	}
	return nil
}

func (b *JarBundle) clone() *JarBundle {
	c := &JarBundle{
		Base:      Base{Info: b.Info},
		Artifacts: slices.Clone(b.Artifacts),
		Jars:      slices.Clone(b.Jars),
	}
	c.Info.Imports = slices.Clone(b.Info.Imports)
	c.Info.Dependencies = slices.Clone(b.Info.Dependencies)
	return c
}

func configurationOrDefault(c string) string {
	if c == "" {
		return DefaultConfiguration
	}
	return c
}

var _ Bundle = (*JarBundle)(nil)
