package bundle

import (
	"strings"

	"github.com/matzehuels/prebuild/pkg/project"
)

// Config is the key/value state a bundle reads on load and writes on save.
// Implementations live in the bundleconf package.
type Config interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Keys() []string
}

// Bundle is a pluggable feature unit.
type Bundle interface {
	// TypeID returns the canonical type identifier. It is the identity of the
	// bundle: at most one instance per (environment, TypeID) is registered.
	TypeID() string
	Name() string
	Description() string
	Version() string

	// UseImports lists fully-qualified class names to import into user sources.
	UseImports() []string

	// Dependencies lists the type identifiers this bundle requires.
	Dependencies() []string

	// ApplyDependencies contributes repositories and dependencies to the build tool.
	ApplyDependencies(bt BuildTool)

	// OnPreCompile runs after every bundle of the resolved set has applied its
	// build-tool dependencies.
	OnPreCompile(p *project.Project, env project.Environment, log project.LogFunc) error

	OnSave(p *project.Project, cfg Config) error
	OnLoad(p *project.Project, cfg Config) error
}

// Info is the static description of a bundle.
type Info struct {
	Type         string
	Name         string
	Description  string
	Version      string
	Imports      []string
	Dependencies []string
}

// Base implements [Bundle] from an [Info] with no-op hooks. Concrete bundles
// embed it and override what they need.
type Base struct {
	Info Info
}

func (b *Base) TypeID() string         { return b.Info.Type }
func (b *Base) Name() string           { return b.Info.Name }
func (b *Base) Description() string    { return b.Info.Description }
func (b *Base) Version() string        { return b.Info.Version }
func (b *Base) UseImports() []string   { return b.Info.Imports }
func (b *Base) Dependencies() []string { return b.Info.Dependencies }

func (b *Base) ApplyDependencies(BuildTool) {}

func (b *Base) OnPreCompile(*project.Project, project.Environment, project.LogFunc) error {
	return nil
}

func (b *Base) OnSave(*project.Project, Config) error { return nil }
func (b *Base) OnLoad(*project.Project, Config) error { return nil }

// Missing stands in for a type identifier that has no registered factory.
// It has no dependencies, imports or build-tool contribution.
type Missing struct {
	Base
}

// NewMissing returns a placeholder for typeID.
func NewMissing(typeID string) *Missing {
	id := CanonicalTypeID(typeID)
	return &Missing{Base{Info: Info{
		Type:        id,
		Name:        ShortName(id),
		Description: "unknown bundle type",
	}}}
}

// CanonicalTypeID strips the leading namespace separator PHP allows on
// fully-qualified names.
func CanonicalTypeID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), `\`)
}

// ShortName returns the last namespace segment of a class name.
func ShortName(name string) string {
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		return name[i+1:]
	}
	return name
}

var (
	_ Bundle = (*Base)(nil)
	_ Bundle = (*Missing)(nil)
)
