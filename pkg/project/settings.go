package project

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/prebuild/pkg/errors"
)

// SettingsFile is the IDE settings file inside the IDE directory.
const SettingsFile = "project.toml"

// KeyUseImports toggles use-import injection during pre-compile.
const KeyUseImports = "useImports"

// Settings is the flat key/value IDE configuration of a project.
type Settings struct {
	values map[string]any
}

// NewSettings returns empty settings.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]any)}
}

// LoadSettings reads settings from a TOML file. A missing file yields
// empty settings.
func LoadSettings(path string) (*Settings, error) {
	s := NewSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileIO, err, "read %s", path)
	}
	if _, err := toml.Decode(string(data), &s.values); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return s, nil
}

// Bool returns the boolean at key, or def when unset or not a boolean.
func (s *Settings) Bool(key string, def bool) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

// SetBool stores a boolean.
func (s *Settings) SetBool(key string, v bool) { s.values[key] = v }

// String returns the string at key, or def.
func (s *Settings) String(key, def string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// SetString stores a string.
func (s *Settings) SetString(key, v string) { s.values[key] = v }

// UseImports reports whether use-import injection is enabled (default true).
func (s *Settings) UseImports() bool { return s.Bool(KeyUseImports, true) }

// Save writes the settings as TOML.
func (s *Settings) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.values); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryCreation, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "write %s", path)
	}
	return nil
}
