// Package bundle tracks pluggable feature packages ("bundles") and resolves
// their transitive dependencies per build environment.
//
// # Overview
//
// A [Bundle] is identified by a canonical type identifier, a PHP class name
// such as `ide\bundle\std\JPHPCoreBundle`. It declares the use-imports it wants
// available in user sources, the type identifiers it depends on, what it
// contributes to the build tool, and hooks for save, load and pre-compile.
//
// The package has three layers:
//
//  1. [Types]: factories keyed by type identifier, populated at startup from
//     TOML catalogs (see [ParseCatalog] and the std subpackage).
//  2. [Registry]: bundle instances keyed by (environment, type identifier).
//  3. [Resolver]: expands the registry into a [Set] for one environment.
//
// # Environments
//
// A bundle registered under project.EnvAll applies everywhere unless an
// environment-specific registration of the same type exists. Registering under
// a specific environment evicts the catch-all entry:
//
//	reg := bundle.NewRegistry(types)
//	reg.AddType(project.EnvAll, `ide\bundle\std\JPHPCoreBundle`)
//	reg.AddType(project.EnvDev, `ide\bundle\std\JPHPCoreBundle`) // the all entry is gone
//
// # Resolution
//
// [Resolver.ResolveAll] never fails. Dependencies without a registration are
// constructed with defaults through [Types], and unknown type identifiers
// become [Missing] placeholders, so callers always receive usable bundles:
//
//	set := bundle.NewResolver(reg).ResolveAll(project.EnvDev)
//	for _, b := range set.Bundles() {
//	    fmt.Println(b.Name())
//	}
package bundle
