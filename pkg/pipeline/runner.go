package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/observability"
	"github.com/matzehuels/prebuild/pkg/phpsrc"
	"github.com/matzehuels/prebuild/pkg/project"
)

// Stage names reported to [observability.PipelineHooks].
const (
	StageRestore = "restore"
	StageResolve = "resolve"
	StageApply   = "apply"
	StageHooks   = "hooks"
	StageImports = "imports"
)

// Runner executes pre-compile runs for one project.
//
// The Runner holds no per-run state; the resolver reads the registry afresh
// on every run.
type Runner struct {
	Project  *project.Project
	Resolver *bundle.Resolver
	Rewriter *phpsrc.Rewriter
	// BuildTool receives repositories and dependencies. Nil skips the apply
	// stage.
	BuildTool bundle.BuildTool
	Logger    *log.Logger
}

// NewRunner creates a runner.
// If rw is nil, a rewriter without ledger is used.
// If logger is nil, output is discarded.
func NewRunner(p *project.Project, resolver *bundle.Resolver, rw *phpsrc.Rewriter, bt bundle.BuildTool, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if rw == nil {
		rw = phpsrc.NewRewriter(p, nil, logger)
	}
	return &Runner{
		Project:   p,
		Resolver:  resolver,
		Rewriter:  rw,
		BuildTool: bt,
		Logger:    logger,
	}
}

// Run executes the pre-compile stages for env. Progress lines go to logf,
// which may be nil.
func (r *Runner) Run(ctx context.Context, env project.Environment, logf project.LogFunc) (*Result, error) {
	result := &Result{RunID: uuid.NewString(), Env: env}
	logger := r.Logger.With("run", result.RunID, "env", env)
	hooks := observability.Pipeline()

	// Stage 1: Restore
	start := time.Now()
	hooks.OnStageStart(ctx, StageRestore, env.String())
	restored, err := RestoreSources(r.Project)
	result.Stats.RestoreTime = time.Since(start)
	hooks.OnStageComplete(ctx, StageRestore, env.String(), result.Stats.RestoreTime, err)
	if err != nil {
		return nil, fmt.Errorf("restore sources: %w", err)
	}
	result.Restored = restored
	logger.Debug("restored sources",
		"count", len(restored),
		"duration", result.Stats.RestoreTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Resolve
	start = time.Now()
	hooks.OnStageStart(ctx, StageResolve, env.String())
	set := r.Resolver.ResolveAll(env)
	result.Bundles = set.TypeIDs()
	result.Stats.ResolveTime = time.Since(start)
	hooks.OnStageComplete(ctx, StageResolve, env.String(), result.Stats.ResolveTime, nil)
	logger.Info("resolved bundles",
		"count", set.Len(),
		"duration", result.Stats.ResolveTime)

	// Stage 3: Apply
	if r.BuildTool != nil {
		start = time.Now()
		hooks.OnStageStart(ctx, StageApply, env.String())
		for _, kind := range bundle.StandardRepositories {
			r.BuildTool.AddRepository(kind)
		}
		r.BuildTool.AddRepository(bundle.RepoLocalLib)

		for _, b := range set.Bundles() {
			logf.Log(fmt.Sprintf(":apply-bundle %q", b.Name()))
			b.ApplyDependencies(r.BuildTool)
		}
		result.Stats.ApplyTime = time.Since(start)
		hooks.OnStageComplete(ctx, StageApply, env.String(), result.Stats.ApplyTime, nil)
		logger.Info("applied dependencies",
			"bundles", set.Len(),
			"duration", result.Stats.ApplyTime)
	}

	// Stage 4: Hooks
	start = time.Now()
	hooks.OnStageStart(ctx, StageHooks, env.String())
	err = r.runHooks(ctx, set, env, logf)
	result.Stats.HookTime = time.Since(start)
	hooks.OnStageComplete(ctx, StageHooks, env.String(), result.Stats.HookTime, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("ran pre-compile hooks", "duration", result.Stats.HookTime)

	// Stage 5: Imports
	if !r.Project.Settings().UseImports() {
		logger.Debug("import injection disabled")
		return result, nil
	}
	req := phpsrc.NewRequest(set.UseImports()...)
	if len(req) == 0 {
		return result, nil
	}

	start = time.Now()
	hooks.OnStageStart(ctx, StageImports, env.String())
	imports, err := r.Rewriter.Rewrite(ctx, r.Project.File(project.AppSourceDir), req, env == project.EnvDev, logf)
	result.Stats.ImportTime = time.Since(start)
	hooks.OnStageComplete(ctx, StageImports, env.String(), result.Stats.ImportTime, err)
	if err != nil {
		return nil, fmt.Errorf("inject imports: %w", err)
	}
	result.Imports = imports
	logger.Info("injected imports",
		"imports", len(req),
		"changed", len(imports.Changed),
		"skipped", len(imports.Skipped),
		"duration", result.Stats.ImportTime)

	return result, nil
}

func (r *Runner) runHooks(ctx context.Context, set *bundle.Set, env project.Environment, logf project.LogFunc) error {
	for _, b := range set.Bundles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.OnPreCompile(r.Project, env, logf); err != nil {
			return errors.Wrap(errors.ErrCodeBundleHook, err, "pre-compile bundle %s", b.Name())
		}
	}
	return nil
}
