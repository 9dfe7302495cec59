package pipeline

import (
	"context"

	"github.com/matzehuels/prebuild/pkg/bundleconf"
	"github.com/matzehuels/prebuild/pkg/project"
	"github.com/matzehuels/prebuild/pkg/settings"
)

// Behaviour connects bundle handling to the project lifecycle: saving the
// project persists bundle configs and the settings toggle, pre-compiling
// runs the pipeline, and settings events drive the panel.
type Behaviour struct {
	Runner *Runner
	Store  *bundleconf.Store
	// Panel is optional.
	Panel *settings.Panel

	// Context bounds pre-compile runs started by lifecycle events. Nil means
	// context.Background.
	Context context.Context

	last *Result
}

// Attach subscribes b to the events of p.
func (b *Behaviour) Attach(p *project.Project) {
	lc := p.Lifecycle()
	lc.OnSave(b)
	lc.OnPreCompile(b)
	if b.Panel != nil {
		lc.OnSettings(b)
	}
}

// Last returns the result of the latest successful pre-compile run.
func (b *Behaviour) Last() *Result { return b.last }

// OnProjectSave implements [project.SaveListener].
func (b *Behaviour) OnProjectSave(p *project.Project) error {
	if b.Panel != nil {
		b.Panel.Commit(p)
	}
	return b.Store.SaveAll(b.Runner.Resolver.Registry())
}

// OnProjectPreCompile implements [project.PreCompileListener].
func (b *Behaviour) OnProjectPreCompile(_ *project.Project, env project.Environment, log project.LogFunc) error {
	ctx := b.Context
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := b.Runner.Run(ctx, env, log)
	if err != nil {
		return err
	}
	b.last = res
	return nil
}

// OnMakeSettings implements [project.SettingsListener].
func (b *Behaviour) OnMakeSettings(e project.Editor) { b.Panel.Make(e) }

// OnUpdateSettings implements [project.SettingsListener].
func (b *Behaviour) OnUpdateSettings(project.Editor) { b.Panel.Update() }

var (
	_ project.SaveListener       = (*Behaviour)(nil)
	_ project.PreCompileListener = (*Behaviour)(nil)
	_ project.SettingsListener   = (*Behaviour)(nil)
)
