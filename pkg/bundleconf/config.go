package bundleconf

import (
	"bytes"

	"github.com/magiconair/properties"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/project"
)

// KeyEnv is the reserved key holding the registration environment.
const KeyEnv = "env"

// Config is the persisted state of one bundle type.
type Config struct {
	typeID string
	path   string
	props  *properties.Properties
}

func newConfig(typeID, path string) *Config {
	props := properties.NewProperties()
	props.DisableExpansion = true
	return &Config{typeID: typeID, path: path, props: props}
}

func parseConfig(typeID, path string, data []byte) (*Config, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := l.LoadBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigLoad, err, "parse %s", path)
	}
	return &Config{typeID: typeID, path: path, props: props}, nil
}

// TypeID returns the bundle type the config belongs to.
func (c *Config) TypeID() string { return c.typeID }

// Path returns the absolute file path of the config.
func (c *Config) Path() string { return c.path }

func (c *Config) Get(key string) (string, bool) { return c.props.Get(key) }

func (c *Config) Set(key, value string) {
	// expansion is disabled, so Set cannot fail on circular references
	_, _, _ = c.props.Set(key, value)
}

func (c *Config) Delete(key string) { c.props.Delete(key) }

func (c *Config) Keys() []string { return c.props.Keys() }

// Env returns the recorded environment, EnvAll when none is recorded.
func (c *Config) Env() (project.Environment, error) {
	v, _ := c.props.Get(KeyEnv)
	return project.ParseEnvironment(v)
}

// SetEnv records env.
func (c *Config) SetEnv(env project.Environment) { c.Set(KeyEnv, env.String()) }

func (c *Config) encode() []byte {
	var buf bytes.Buffer
	_, _ = c.props.Write(&buf, properties.UTF8)
	return buf.Bytes()
}

var _ bundle.Config = (*Config)(nil)
