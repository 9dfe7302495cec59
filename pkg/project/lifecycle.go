package project

// LogFunc receives human-readable progress lines. A nil LogFunc discards them.
type LogFunc func(msg string)

// Log calls f with msg when f is non-nil.
func (f LogFunc) Log(msg string) {
	if f != nil {
		f(msg)
	}
}

// Editor is the settings surface the IDE hands to settings listeners.
type Editor interface {
	// AddSettingsPane mounts a pane produced by a listener.
	AddSettingsPane(pane any)
}

// SaveListener is notified when the project is saved.
type SaveListener interface {
	OnProjectSave(p *Project) error
}

// PreCompileListener is notified before the project is compiled for env.
type PreCompileListener interface {
	OnProjectPreCompile(p *Project, env Environment, log LogFunc) error
}

// SettingsListener builds and refreshes settings panes.
type SettingsListener interface {
	OnMakeSettings(e Editor)
	OnUpdateSettings(e Editor)
}

// Lifecycle dispatches project events to registered listeners.
type Lifecycle struct {
	save       []SaveListener
	preCompile []PreCompileListener
	settings   []SettingsListener
}

// NewLifecycle returns an empty event hub.
func NewLifecycle() *Lifecycle { return &Lifecycle{} }

// OnSave registers a save listener.
func (l *Lifecycle) OnSave(fn SaveListener) { l.save = append(l.save, fn) }

// OnPreCompile registers a pre-compile listener.
func (l *Lifecycle) OnPreCompile(fn PreCompileListener) { l.preCompile = append(l.preCompile, fn) }

// OnSettings registers a settings listener.
func (l *Lifecycle) OnSettings(fn SettingsListener) { l.settings = append(l.settings, fn) }

// FireSave notifies save listeners, stopping at the first error.
func (l *Lifecycle) FireSave(p *Project) error {
	for _, fn := range l.save {
		if err := fn.OnProjectSave(p); err != nil {
			return err
		}
	}
	return nil
}

// FirePreCompile notifies pre-compile listeners, stopping at the first error.
func (l *Lifecycle) FirePreCompile(p *Project, env Environment, log LogFunc) error {
	for _, fn := range l.preCompile {
		if err := fn.OnProjectPreCompile(p, env, log); err != nil {
			return err
		}
	}
	return nil
}

// FireMakeSettings asks settings listeners to build their panes.
func (l *Lifecycle) FireMakeSettings(e Editor) {
	for _, fn := range l.settings {
		fn.OnMakeSettings(e)
	}
}

// FireUpdateSettings asks settings listeners to refresh their panes.
func (l *Lifecycle) FireUpdateSettings(e Editor) {
	for _, fn := range l.settings {
		fn.OnUpdateSettings(e)
	}
}
