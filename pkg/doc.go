// Package pkg provides the core libraries of prebuild, the bundle and
// pre-compile toolkit for JPHP projects.
//
// # Overview
//
// A project declares bundles: named units with jar dependencies, class
// imports and lifecycle hooks. prebuild keeps one registration per build
// environment, resolves them with their transitive dependencies and prepares
// the project for compilation.
//
//  1. [bundle] - Bundle types, the per-environment registry and the resolver
//  2. [bundleconf] - Per-bundle .conf files under .prebuild/bundles
//  3. [phpsrc] - PHP header parsing and use-import injection
//  4. [gradle] - Build script generation
//  5. [pipeline] - The ordered pre-compile step and project lifecycle wiring
//
// # Architecture
//
// The data flow of a pre-compile run:
//
//	.prebuild/bundles/*.conf
//	         ↓
//	    [bundleconf] package (load registrations)
//	         ↓
//	    [bundle] package (resolve for the target environment)
//	         ↓
//	    [gradle] package (repositories + dependencies)
//	         ↓
//	    [phpsrc] package (inject use-imports into src/app)
//
// # Quick Start
//
//	types, _ := std.Types()
//	reg := bundle.NewRegistry(types)
//	reg.AddType(project.EnvAll, std.JSON)
//
//	p, _ := project.Open(".")
//	runner := pipeline.NewRunner(p, bundle.NewResolver(reg), nil, gradle.New(), nil)
//	result, err := runner.Run(ctx, project.EnvDev, nil)
//
// # Supporting Packages
//
// [project] - Project directory, environments, IDE settings and lifecycle
// events.
//
// [settings] - The bundle settings pane model.
//
// [cache] - The rewrite ledger: file and no-op caches keyed by content hash.
//
// [render/dot] - Bundle graph export as DOT or SVG.
//
// [observability] - Optional hooks for stage and ledger events.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information injected at build time.
package pkg
