// Package project models an open IDE project: its directory layout, the IDE
// settings persisted next to it, the build environments it compiles for, and
// the lifecycle events the surrounding editor fires.
//
// # Layout
//
//	<root>/
//	  bundles.toml          optional project bundle catalog
//	  build.gradle          build script, partly managed by prebuild
//	  src/                  sources; *.source files are the checked-in originals
//	  src/app/              application sources that receive use-imports
//	  .prebuild/
//	    project.toml        IDE settings (see [Settings])
//	    bundles/*.conf      per-bundle configuration
//
// # Lifecycle
//
// [Lifecycle] replaces string-named event subscription with one typed
// listener interface per event. Listeners run in registration order and the
// first error stops the dispatch.
package project
