package bundle

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTool struct {
	repos []RepositoryKind
	deps  []Dependency
}

func (r *recordingTool) AddRepository(kind RepositoryKind) { r.repos = append(r.repos, kind) }
func (r *recordingTool) AddDependency(dep Dependency)      { r.deps = append(r.deps, dep) }

type mapConfig map[string]string

func (m mapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapConfig) Set(key, value string) { m[key] = value }
func (m mapConfig) Delete(key string)     { delete(m, key) }
func (m mapConfig) Keys() []string        { return slices.Sorted(maps.Keys(m)) }

func TestJarBundleApplyDependencies(t *testing.T) {
	b := &JarBundle{
		Base: Base{Info: Info{Type: `x\Jar`, Version: "1.2.0"}},
		Artifacts: []Artifact{
			{Group: "org.example", Name: "core"},
			{Group: "org.example", Name: "api", Version: "0.9", Configuration: "runtime"},
		},
		Jars: []string{"local.jar"},
	}

	bt := &recordingTool{}
	b.ApplyDependencies(bt)

	assert.Empty(t, bt.repos)
	assert.Equal(t, []Dependency{
		{Configuration: DefaultConfiguration, Group: "org.example", Name: "core", Version: "1.2.0"},
		{Configuration: "runtime", Group: "org.example", Name: "api", Version: "0.9"},
		{Configuration: DefaultConfiguration, File: "local.jar"},
	}, bt.deps)
}

func TestJarBundleVersionPersistence(t *testing.T) {
	b := &JarBundle{Base: Base{Info: Info{Type: `x\Jar`, Version: "1.0"}}}
	cfg := mapConfig{}

	assert.NoError(t, b.OnSave(nil, cfg))
	assert.Equal(t, "1.0", cfg[KeyVersion])

	cfg[KeyVersion] = "2.0"
	assert.NoError(t, b.OnLoad(nil, cfg))
	assert.Equal(t, "2.0", b.Version())

	cfg[KeyVersion] = ""
	assert.NoError(t, b.OnLoad(nil, cfg))
	assert.Equal(t, "2.0", b.Version(), "empty pin keeps the current version")
}

func TestDependencyCoordinate(t *testing.T) {
	assert.Equal(t, "g:n:1", Dependency{Group: "g", Name: "n", Version: "1"}.Coordinate())
	assert.Equal(t, "g:n", Dependency{Group: "g", Name: "n"}.Coordinate())
	assert.Equal(t, "x.jar", Dependency{File: "x.jar"}.Coordinate())
}
