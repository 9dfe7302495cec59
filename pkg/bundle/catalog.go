package bundle

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/prebuild/pkg/errors"
)

// Catalog is a TOML document declaring jar bundles:
//
//	[[bundle]]
//	type = 'ide\bundle\std\JPHPXmlBundle'
//	name = "JPHP Xml"
//	version = "1.0.0"
//	dependencies = ['ide\bundle\std\JPHPCoreBundle']
//	imports = ['php\xml\XmlProcessor']
//
//	  [[bundle.artifact]]
//	  group = "org.develnext.jphp"
//	  name = "jphp-xml-ext"
type Catalog struct {
	Bundles []Definition `toml:"bundle"`
}

// Definition declares one jar bundle.
type Definition struct {
	Type         string     `toml:"type"`
	Name         string     `toml:"name"`
	Description  string     `toml:"description"`
	Version      string     `toml:"version"`
	Dependencies []string   `toml:"dependencies"`
	Imports      []string   `toml:"imports"`
	Artifacts    []Artifact `toml:"artifact"`
	Jars         []string   `toml:"jars"`
}

// ParseCatalog decodes and validates a catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	for i, d := range c.Bundles {
		if err := errors.ValidateTypeID(d.Type); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "bundle #%d", i+1)
		}
		for _, dep := range d.Dependencies {
			if err := errors.ValidateTypeID(dep); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "bundle %s dependency", d.Type)
			}
		}
	}
	return &c, nil
}

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileIO, err, "read catalog %s", path)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "catalog %s", path)
	}
	return c, nil
}

// Register adds a factory per definition. Definitions override earlier
// registrations of the same type.
func (c *Catalog) Register(t *Types) {
	for _, d := range c.Bundles {
		proto := d.prototype()
		t.Register(proto.TypeID(), func() Bundle { return proto.clone() })
	}
}

func (d Definition) prototype() *JarBundle {
	id := CanonicalTypeID(d.Type)
	name := d.Name
	if name == "" {
		name = ShortName(id)
	}
	deps := make([]string, 0, len(d.Dependencies))
	for _, dep := range d.Dependencies {
		deps = append(deps, CanonicalTypeID(dep))
	}
	return &JarBundle{
		Base: Base{Info: Info{
			Type:         id,
			Name:         name,
			Description:  d.Description,
			Version:      d.Version,
			Imports:      d.Imports,
			Dependencies: deps,
		}},
		Artifacts: d.Artifacts,
		Jars:      d.Jars,
	}
}
