// Package pipeline implements the pre-compile step of a project build.
//
// A run is strictly ordered:
//
//  1. Restore: every "*.source" file under src/ overwrites its stripped
//     sibling, undoing generated edits from an earlier run
//  2. Resolve: the bundles active in the target environment are expanded
//     with their transitive dependencies
//  3. Apply: when a build tool is configured, the standard repositories and
//     the local library repository are added, then every bundle contributes
//     its dependencies
//  4. Hooks: every bundle's OnPreCompile runs, after all of step 3
//  5. Imports: when the project enables it, the union of bundle use-imports
//     is merged into the application sources
//
// The first failure aborts the run.
//
// # Usage
//
//	runner := pipeline.NewRunner(p, bundle.NewResolver(reg), rewriter, gradle.New(), logger)
//	result, err := runner.Run(ctx, project.EnvDev, func(msg string) { fmt.Println(msg) })
//
// [Behaviour] wires a runner, a config store and a settings panel into the
// project lifecycle so that save and pre-compile events drive them.
package pipeline

import (
	"time"

	"github.com/matzehuels/prebuild/pkg/phpsrc"
	"github.com/matzehuels/prebuild/pkg/project"
)

// Result contains the output of a pre-compile run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	Env   project.Environment

	// Bundles lists the resolved type identifiers in application order.
	Bundles []string

	// Restored lists project-relative paths overwritten from their .source file.
	Restored []string

	// Imports is the import rewrite result, nil when import injection was off
	// or no bundle declared imports.
	Imports *phpsrc.Result

	Stats Stats
}

// Rewritten returns the sources changed by import injection.
func (r *Result) Rewritten() []string {
	if r.Imports == nil {
		return nil
	}
	return r.Imports.Changed
}

// Stats contains timing information for each stage.
type Stats struct {
	RestoreTime time.Duration
	ResolveTime time.Duration
	ApplyTime   time.Duration
	HookTime    time.Duration
	ImportTime  time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.RestoreTime + s.ResolveTime + s.ApplyTime + s.HookTime + s.ImportTime
}
