package bundleconf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/project"
)

// Dir is the IDE subdirectory holding bundle config files.
const Dir = "bundles"

// Store reads and writes bundle configs of one project.
//
// Store remembers every config it has loaded or saved so that keys written by
// earlier hooks survive later saves.
type Store struct {
	project *project.Project
	types   *bundle.Types
	logger  *log.Logger
	configs map[string]*Config
}

// NewStore creates a store for p constructing bundles through types.
// A nil logger discards output.
func NewStore(p *project.Project, types *bundle.Types, logger *log.Logger) *Store {
	if types == nil {
		types = bundle.NewTypes()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Store{
		project: p,
		types:   types,
		logger:  logger,
		configs: make(map[string]*Config),
	}
}

// Dir returns the absolute config directory.
func (s *Store) Dir() string { return s.project.IDEFile(Dir) }

// Path returns the config file path for typeID.
func (s *Store) Path(typeID string) string {
	return filepath.Join(s.Dir(), bundle.FileName(typeID))
}

// Config returns the config remembered for typeID by a previous Load or Save.
func (s *Store) Config(typeID string) (*Config, bool) {
	c, ok := s.configs[bundle.CanonicalTypeID(typeID)]
	return c, ok
}

// Save persists b as registered under env. Keys already present in the
// existing file are kept unless the bundle's OnSave hook changes them.
func (s *Store) Save(b bundle.Bundle, env project.Environment) error {
	if _, err := s.project.EnsureDir(Dir); err != nil {
		return err
	}

	id := bundle.CanonicalTypeID(b.TypeID())
	cfg := s.open(id)
	cfg.SetEnv(env)
	if err := b.OnSave(s.project, cfg); err != nil {
		return errors.Wrap(errors.ErrCodeBundleHook, err, "save bundle %s", b.Name())
	}

	if err := os.WriteFile(cfg.path, cfg.encode(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "write %s", cfg.path)
	}
	s.configs[id] = cfg
	s.logger.Debug("saved bundle config", "type", id, "env", env)
	return nil
}

// SaveAll saves every registration of reg, stopping at the first error.
func (s *Store) SaveAll(reg *bundle.Registry) error {
	for _, env := range reg.Environments() {
		for _, b := range reg.Bundles(env) {
			if err := s.Save(b, env); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load registers a bundle for every readable config file of a known type and
// returns how many were registered. A missing config directory loads nothing.
func (s *Store) Load(reg *bundle.Registry) (int, error) {
	entries, err := os.ReadDir(s.Dir())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFileIO, err, "read %s", s.Dir())
	}

	n := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		b, cfg, ok := s.read(entry.Name())
		if !ok {
			continue
		}
		if err := b.OnLoad(s.project, cfg); err != nil {
			return n, errors.Wrap(errors.ErrCodeBundleHook, err, "load bundle %s", b.Name())
		}
		s.configs[cfg.typeID] = cfg

		env, _ := cfg.Env()
		if reg.Add(env, b) {
			n++
		} else {
			s.logger.Debug("bundle already registered", "type", cfg.typeID, "env", env)
		}
	}
	return n, nil
}

// read turns one directory entry into a fresh bundle and its config. Every
// failure is logged and reported as ok == false.
func (s *Store) read(name string) (bundle.Bundle, *Config, bool) {
	id, ok := bundle.TypeIDFromFileName(name)
	if !ok {
		return nil, nil, false
	}
	if err := errors.ValidateTypeID(id); err != nil {
		s.logger.Debug("skipping bundle config", "file", name, "err", err)
		return nil, nil, false
	}
	b, ok := s.types.New(id)
	if !ok {
		s.logger.Debug("skipping bundle config", "file", name,
			"err", errors.New(errors.ErrCodeUnknownBundle, "unknown bundle type %s", id))
		return nil, nil, false
	}

	path := filepath.Join(s.Dir(), name)
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Debug("skipping bundle config", "file", name,
			"err", errors.Wrap(errors.ErrCodeConfigLoad, err, "read %s", path))
		return nil, nil, false
	}
	cfg, err := parseConfig(id, path, data)
	if err != nil {
		s.logger.Debug("skipping bundle config", "file", name, "err", err)
		return nil, nil, false
	}
	if _, err := cfg.Env(); err != nil {
		s.logger.Debug("skipping bundle config", "file", name,
			"err", errors.Wrap(errors.ErrCodeConfigLoad, err, "env of %s", path))
		return nil, nil, false
	}
	return b, cfg, true
}

// open returns the remembered config for id, else the one on disk, else a
// new empty config.
func (s *Store) open(id string) *Config {
	if cfg, ok := s.configs[id]; ok {
		return cfg
	}
	path := s.Path(id)
	if data, err := os.ReadFile(path); err == nil {
		if cfg, err := parseConfig(id, path, data); err == nil {
			return cfg
		}
		s.logger.Debug("replacing unreadable bundle config", "file", path)
	}
	return newConfig(id, path)
}
