package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/project"
)

type fakeEditor struct {
	panes []any
}

func (e *fakeEditor) AddSettingsPane(pane any) { e.panes = append(e.panes, pane) }

func setup(t *testing.T) (*project.Project, *bundle.Registry) {
	t.Helper()
	p, err := project.Open(t.TempDir())
	require.NoError(t, err)

	types := bundle.NewTypes()
	types.Register(`x\Core`, func() bundle.Bundle {
		return &bundle.Base{Info: bundle.Info{Type: `x\Core`, Name: "Core", Description: "core runtime", Version: "1.0"}}
	})
	reg := bundle.NewRegistry(types)
	reg.AddType(project.EnvAll, `x\Core`)
	reg.AddType(project.EnvDev, `x\Ghost`)
	return p, reg
}

func TestPanelItems(t *testing.T) {
	p, reg := setup(t)
	panel := NewPanel(p, reg)

	items := panel.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Core [all]", items[0].Label())
	assert.Equal(t, "core runtime", items[0].Description)
	assert.False(t, items[0].Missing)
	assert.Equal(t, "Ghost [dev]", items[1].Label())
	assert.True(t, items[1].Missing)
	assert.True(t, panel.UseImports(), "imports default to on")
}

func TestPanelMakeAndUpdate(t *testing.T) {
	p, reg := setup(t)
	panel := NewPanel(p, reg)
	ed := &fakeEditor{}

	panel.Make(ed)
	require.Len(t, ed.panes, 1)
	assert.Same(t, panel, ed.panes[0])
	assert.True(t, panel.Mounted())

	reg.AddType(project.EnvProd, `x\Other`)
	assert.Len(t, panel.Items(), 2, "items are a snapshot")
	panel.Update()
	assert.Len(t, panel.Items(), 3)
}

func TestPanelCommit(t *testing.T) {
	p, reg := setup(t)
	panel := NewPanel(p, reg)

	panel.SetUseImports(false)
	assert.True(t, p.Settings().UseImports(), "toggle is pending until commit")
	panel.Commit(p)
	assert.False(t, p.Settings().UseImports())

	p.Settings().SetBool(project.KeyUseImports, true)
	panel.Update()
	assert.True(t, panel.UseImports())
}
