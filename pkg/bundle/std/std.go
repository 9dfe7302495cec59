// Package std provides the standard bundle catalog shipped with the IDE.
//
// This package exists to keep the embedded catalog out of the bundle package
// so tests there can build factory registries from scratch.
//
// Usage:
//
//	types, err := std.Types()
//	reg := bundle.NewRegistry(types)
package std

import (
	_ "embed"

	"github.com/matzehuels/prebuild/pkg/bundle"
)

// Type identifiers of the standard bundles.
const (
	Runtime    = `ide\bundle\std\JPHPRuntimeBundle`
	Core       = `ide\bundle\std\JPHPCoreBundle`
	JSON       = `ide\bundle\std\JPHPJsonBundle`
	XML        = `ide\bundle\std\JPHPXmlBundle`
	GuiDesktop = `ide\bundle\std\JPHPGuiDesktopBundle`
	UIDesktop  = `ide\bundle\std\UIDesktopBundle`
	SQL        = `ide\bundle\std\JPHPSqlBundle`
	SQLite     = `ide\bundle\std\SqliteBundle`
)

//go:embed catalog.toml
var catalogData []byte

// Catalog parses the embedded standard catalog.
func Catalog() (*bundle.Catalog, error) {
	return bundle.ParseCatalog(catalogData)
}

// Types returns a factory registry holding the standard bundles.
func Types() (*bundle.Types, error) {
	c, err := Catalog()
	if err != nil {
		return nil, err
	}
	t := bundle.NewTypes()
	c.Register(t)
	return t, nil
}
