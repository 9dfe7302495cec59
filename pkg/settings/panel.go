// Package settings exposes bundle state to the IDE settings surface.
//
// A [Panel] is a read model: it lists registered bundles and carries the
// import-injection toggle. Drawing it is left to the front end.
package settings

import (
	"fmt"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/project"
)

// Item describes one registered bundle.
type Item struct {
	TypeID      string
	Name        string
	Description string
	Version     string
	Env         project.Environment
	// Missing is set for registrations whose type is unknown.
	Missing bool
}

// Label returns "Name [env]".
func (i Item) Label() string {
	return fmt.Sprintf("%s [%s]", i.Name, i.Env)
}

// Panel is the bundle settings pane of a project.
type Panel struct {
	project    *project.Project
	registry   *bundle.Registry
	items      []Item
	useImports bool
	mounted    bool
}

// NewPanel creates a panel over reg and loads its state.
func NewPanel(p *project.Project, reg *bundle.Registry) *Panel {
	panel := &Panel{project: p, registry: reg}
	panel.Update()
	return panel
}

// Make mounts the panel into e and refreshes it.
func (p *Panel) Make(e project.Editor) {
	p.Update()
	e.AddSettingsPane(p)
	p.mounted = true
}

// Mounted reports whether [Panel.Make] ran.
func (p *Panel) Mounted() bool { return p.mounted }

// Update reloads the bundle list and the toggle from the project.
func (p *Panel) Update() {
	p.items = p.items[:0]
	for _, env := range p.registry.Environments() {
		for _, b := range p.registry.Bundles(env) {
			_, missing := b.(*bundle.Missing)
			p.items = append(p.items, Item{
				TypeID:      b.TypeID(),
				Name:        b.Name(),
				Description: b.Description(),
				Version:     b.Version(),
				Env:         env,
				Missing:     missing,
			})
		}
	}
	p.useImports = p.project.Settings().UseImports()
}

// Items returns the bundles as of the last update, grouped by environment.
func (p *Panel) Items() []Item {
	return append([]Item(nil), p.items...)
}

// UseImports returns the toggle state.
func (p *Panel) UseImports() bool { return p.useImports }

// SetUseImports changes the toggle. The change reaches the project settings
// on [Panel.Commit].
func (p *Panel) SetUseImports(v bool) { p.useImports = v }

// Commit writes the toggle into the project settings of proj.
func (p *Panel) Commit(proj *project.Project) {
	proj.Settings().SetBool(project.KeyUseImports, p.useImports)
}
