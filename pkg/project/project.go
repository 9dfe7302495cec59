package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/prebuild/pkg/errors"
)

const (
	// IDEDirName is the project-local directory holding IDE state.
	IDEDirName = ".prebuild"

	// SourceDir holds every project source.
	SourceDir = "src"

	// AppSourceDir holds the application sources that receive use-imports.
	AppSourceDir = "src/app"

	// CatalogFile is the optional project bundle catalog.
	CatalogFile = "bundles.toml"
)

// Project is an open project rooted at a directory.
//
// The zero value is not usable; use [Open].
type Project struct {
	root      string
	settings  *Settings
	lifecycle *Lifecycle
}

// Open opens the project rooted at dir and loads its IDE settings.
// The directory must exist. A missing settings file yields defaults.
func Open(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve project dir %s", dir)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open project %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "project path is not a directory: %s", root)
	}

	p := &Project{root: root, lifecycle: NewLifecycle()}
	settings, err := LoadSettings(p.IDEFile(SettingsFile))
	if err != nil {
		return nil, err
	}
	p.settings = settings
	return p, nil
}

// Root returns the absolute project directory.
func (p *Project) Root() string { return p.root }

// File returns the absolute path of a project-relative slash path.
func (p *Project) File(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

// IDEFile returns the absolute path of a path inside the IDE directory.
func (p *Project) IDEFile(rel string) string {
	return filepath.Join(p.root, IDEDirName, filepath.FromSlash(rel))
}

// Relative converts an absolute path to a project-relative slash path.
// It reports false when the path lies outside the project.
func (p *Project) Relative(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(p.root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// Settings returns the IDE settings of the project.
func (p *Project) Settings() *Settings { return p.settings }

// Lifecycle returns the event hub of the project.
func (p *Project) Lifecycle() *Lifecycle { return p.lifecycle }

// EnsureDir creates an IDE subdirectory and returns its absolute path.
func (p *Project) EnsureDir(rel string) (string, error) {
	dir := p.IDEFile(rel)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeDirectoryCreation, err, "create %s", dir)
	}
	return dir, nil
}

// Save fires the save event and then persists the IDE settings, so listeners
// may still change settings while saving.
func (p *Project) Save() error {
	if err := p.lifecycle.FireSave(p); err != nil {
		return err
	}
	if _, err := p.EnsureDir(""); err != nil {
		return err
	}
	return p.settings.Save(p.IDEFile(SettingsFile))
}
