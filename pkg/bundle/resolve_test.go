package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prebuild/pkg/project"
)

func TestResolveAllMergesAllScope(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\A`: nil,
		`x\B`: {`x\A`},
	}))
	reg.AddType(project.EnvAll, `x\A`)
	reg.AddType(project.EnvDev, `x\B`)

	set := NewResolver(reg).ResolveAll(project.EnvDev)
	assert.Equal(t, []string{`x\A`, `x\B`}, set.TypeIDs())

	a, _ := reg.Lookup(project.EnvAll, `x\A`)
	got, _ := set.Get(`x\A`)
	assert.Same(t, a, got, "the registered all instance is reused")

	prod := NewResolver(reg).ResolveAll(project.EnvProd)
	assert.Equal(t, []string{`x\A`}, prod.TypeIDs())
}

func TestResolveAllCycleTerminates(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\A`: {`x\B`},
		`x\B`: {`x\A`},
	}))
	reg.AddType(project.EnvAll, `x\A`)

	set := NewResolver(reg).ResolveAll(project.EnvAll)
	assert.ElementsMatch(t, []string{`x\A`, `x\B`}, set.TypeIDs())
	assert.Equal(t, 2, set.Len())
}

func TestResolveAllSelfDependency(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{`x\A`: {`x\A`}}))
	reg.AddType(project.EnvDev, `x\A`)

	set := NewResolver(reg).ResolveAll(project.EnvDev)
	assert.Equal(t, []string{`x\A`}, set.TypeIDs())
}

func TestResolveAllDepthFirstPreOrder(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\Root`: {`x\L`, `x\R`},
		`x\L`:    {`x\LL`},
		`x\LL`:   nil,
		`x\R`:    {`x\LL`, `x\RR`},
		`x\RR`:   nil,
	}))
	reg.AddType(project.EnvAll, `x\Root`)

	set := NewResolver(reg).ResolveAll(project.EnvAll)
	assert.Equal(t, []string{`x\L`, `x\LL`, `x\R`, `x\RR`, `x\Root`}, set.TypeIDs())
}

func TestResolveAllIdempotentAndUnique(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\A`: {`x\B`, `x\C`},
		`x\B`: {`x\C`},
		`x\C`: {`x\A`},
		`x\D`: {`x\B`},
	}))
	reg.AddType(project.EnvAll, `x\A`)
	reg.AddType(project.EnvProd, `x\D`)
	reg.AddType(project.EnvProd, `x\C`)

	r := NewResolver(reg)
	for _, env := range project.Environments {
		first := r.ResolveAll(env).TypeIDs()
		second := r.ResolveAll(env).TypeIDs()
		assert.Equal(t, first, second, env)

		seen := make(map[string]bool)
		for _, id := range first {
			require.False(t, seen[id], "duplicate %s in %s", id, env)
			seen[id] = true
		}
	}
	assert.Equal(t, 3, reg.Len(), "resolution does not register dependencies")
}

func TestResolveAllMissingDependency(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{`x\A`: {`gone\Lib`}}))
	reg.AddType(project.EnvAll, `x\A`)

	set := NewResolver(reg).ResolveAll(project.EnvAll)
	require.Equal(t, []string{`gone\Lib`, `x\A`}, set.TypeIDs())
	b, _ := set.Get(`gone\Lib`)
	assert.IsType(t, &Missing{}, b)
}

func TestResolveAllPrefersEnvironmentInstance(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\A`: {`x\B`},
		`x\B`: nil,
	}))
	reg.AddType(project.EnvAll, `x\A`)
	devB, _ := reg.AddType(project.EnvDev, `x\B`)

	set := NewResolver(reg).ResolveAll(project.EnvDev)
	got, ok := set.Get(`x\B`)
	require.True(t, ok)
	assert.Same(t, devB, got)
	assert.Equal(t, []string{`x\B`, `x\A`}, set.TypeIDs())
}

func TestSetEdgesAndImports(t *testing.T) {
	reg := NewRegistry(newTestTypes(map[string][]string{
		`x\A`: nil,
		`x\B`: {`x\A`, `gone\Lib`},
	}))
	reg.AddType(project.EnvAll, `x\A`)
	reg.AddType(project.EnvAll, `x\B`)

	set := NewResolver(reg).ResolveAll(project.EnvAll)
	assert.Equal(t, []Edge{{From: `x\B`, To: `x\A`}, {From: `x\B`, To: `gone\Lib`}}, set.Edges())
	assert.Equal(t, []string{`pkg\A`, `pkg\B`}, set.UseImports())
}

func TestFindImport(t *testing.T) {
	jar := &JarBundle{Base: Base{Info: Info{
		Type:    `x\Gui`,
		Imports: []string{`php\gui\UXButton`, `php\gui\UXLabel`},
	}}}
	plain := &Base{Info: Info{Type: `x\Plain`, Imports: []string{`php\plain\UXPanel`}}}

	reg := NewRegistry(nil)
	reg.Add(project.EnvAll, jar)
	reg.Add(project.EnvAll, plain)

	r := NewResolver(reg)
	imp, ok := r.FindImport("uxbutton")
	assert.True(t, ok)
	assert.Equal(t, `php\gui\UXButton`, imp)

	_, ok = r.FindImport("UXPanel")
	assert.False(t, ok, "only jar bundles are searched")
}
