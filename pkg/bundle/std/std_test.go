package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/project"
)

func TestTypes(t *testing.T) {
	types, err := Types()
	require.NoError(t, err)

	for _, id := range []string{Runtime, Core, JSON, XML, GuiDesktop, UIDesktop, SQL, SQLite} {
		assert.True(t, types.Has(id), id)
	}
	assert.Equal(t, Runtime, types.IDs()[0])
}

func TestStandardDependenciesResolve(t *testing.T) {
	types, err := Types()
	require.NoError(t, err)

	reg := bundle.NewRegistry(types)
	reg.AddType(project.EnvAll, UIDesktop)

	set := bundle.NewResolver(reg).ResolveAll(project.EnvAll)
	assert.Equal(t, []string{GuiDesktop, Core, Runtime, JSON, UIDesktop}, set.TypeIDs())

	for _, b := range set.Bundles() {
		_, missing := b.(*bundle.Missing)
		assert.False(t, missing, "%s should come from the catalog", b.TypeID())
	}
}
