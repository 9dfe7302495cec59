package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/gradle"
	"github.com/matzehuels/prebuild/pkg/observability"
	"github.com/matzehuels/prebuild/pkg/project"
)

// hookBundle records the order in which build-tool and hook calls happen.
type hookBundle struct {
	bundle.Base
	calls *[]string
	fail  error
}

func (b *hookBundle) ApplyDependencies(bt bundle.BuildTool) {
	*b.calls = append(*b.calls, "apply "+b.Name())
	bt.AddDependency(bundle.Dependency{Group: "org.test", Name: b.Name(), Version: "1"})
}

func (b *hookBundle) OnPreCompile(_ *project.Project, _ project.Environment, log project.LogFunc) error {
	*b.calls = append(*b.calls, "hook "+b.Name())
	log.Log("hooked " + b.Name())
	return b.fail
}

type fixture struct {
	project *project.Project
	reg     *bundle.Registry
	calls   []string
	logged  []string
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	p, err := project.Open(root)
	require.NoError(t, err)

	fx := &fixture{project: p}
	types := bundle.NewTypes()
	types.Register(`x\A`, func() bundle.Bundle {
		return &hookBundle{Base: bundle.Base{Info: bundle.Info{Type: `x\A`, Name: "A", Imports: []string{`x\lib\Alpha`}}}, calls: &fx.calls}
	})
	types.Register(`x\B`, func() bundle.Bundle {
		return &hookBundle{Base: bundle.Base{Info: bundle.Info{Type: `x\B`, Name: "B", Dependencies: []string{`x\A`}, Imports: []string{`x\lib\Beta`}}}, calls: &fx.calls}
	})
	fx.reg = bundle.NewRegistry(types)
	return fx
}

func (fx *fixture) log(msg string) { fx.logged = append(fx.logged, msg) }

func (fx *fixture) runner(bt bundle.BuildTool) *Runner {
	return NewRunner(fx.project, bundle.NewResolver(fx.reg), nil, bt, nil)
}

func (fx *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(fx.project.File(rel))
	require.NoError(t, err)
	return string(data)
}

func TestRunEndToEnd(t *testing.T) {
	fx := newFixture(t, map[string]string{
		"src/app/Main.php":       "<?php\nnamespace app;\n\nclass Main {}\n",
		"src/app/forms/Form.php": "<?php\n",
	})
	fx.reg.AddType(project.EnvAll, `x\A`)
	fx.reg.AddType(project.EnvDev, `x\B`)

	script := gradle.New()
	res, err := fx.runner(script).Run(context.Background(), project.EnvDev, fx.log)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []string{`x\A`, `x\B`}, res.Bundles)
	assert.Equal(t, []string{"apply A", "apply B", "hook A", "hook B"}, fx.calls)

	assert.Equal(t, []bundle.RepositoryKind{
		bundle.RepoJCenter, bundle.RepoMavenCentral, bundle.RepoMavenLocal, bundle.RepoLocalLib,
	}, script.Repositories())
	deps := script.Dependencies()
	require.Len(t, deps, 2)
	assert.Equal(t, "A", deps[0].Name, "A is wired first")

	assert.Equal(t, []string{
		`:apply-bundle "A"`,
		`:apply-bundle "B"`,
		"hooked A",
		"hooked B",
		":import use 'src/app/Main.php'",
		":import use 'src/app/forms/Form.php'",
	}, fx.logged)
	assert.Equal(t, []string{"src/app/Main.php", "src/app/forms/Form.php"}, res.Rewritten())

	// dev keeps line numbers
	assert.Equal(t, "<?php\nnamespace app; use x\\lib\\Alpha; use x\\lib\\Beta;\n\nclass Main {}\n", fx.read(t, "src/app/Main.php"))
	assert.Equal(t, "<?php use x\\lib\\Alpha; use x\\lib\\Beta;\n", fx.read(t, "src/app/forms/Form.php"))
}

func TestRunProdUsesOwnLines(t *testing.T) {
	fx := newFixture(t, map[string]string{"src/app/Main.php": "<?php\nnamespace app;\n"})
	fx.reg.AddType(project.EnvAll, `x\A`)

	_, err := fx.runner(nil).Run(context.Background(), project.EnvProd, nil)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nnamespace app;\nuse x\\lib\\Alpha;\n", fx.read(t, "src/app/Main.php"))
}

func TestRunWithoutBuildToolStillRunsHooks(t *testing.T) {
	fx := newFixture(t, nil)
	fx.reg.AddType(project.EnvAll, `x\B`)

	res, err := fx.runner(nil).Run(context.Background(), project.EnvProd, fx.log)
	require.NoError(t, err)
	assert.Equal(t, []string{`x\A`, `x\B`}, res.Bundles)
	assert.Equal(t, []string{"hook A", "hook B"}, fx.calls)
	assert.Nil(t, res.Imports.Changed, "missing src/app is an empty rewrite")
}

func TestRunHookFailureIsFatal(t *testing.T) {
	fx := newFixture(t, map[string]string{"src/app/Main.php": "<?php\n"})
	types := fx.reg.Types()
	types.Register(`x\A`, func() bundle.Bundle {
		return &hookBundle{Base: bundle.Base{Info: bundle.Info{Type: `x\A`, Name: "A", Imports: []string{`x\lib\Alpha`}}},
			calls: &fx.calls, fail: fmt.Errorf("missing toolchain")}
	})
	fx.reg.AddType(project.EnvAll, `x\B`)

	_, err := fx.runner(gradle.New()).Run(context.Background(), project.EnvDev, fx.log)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeBundleHook))
	assert.Contains(t, err.Error(), "missing toolchain")
	assert.Equal(t, []string{"apply A", "apply B", "hook A"}, fx.calls, "later hooks do not run")
	assert.Equal(t, "<?php\n", fx.read(t, "src/app/Main.php"), "imports are not injected")
}

func TestRunImportsDisabled(t *testing.T) {
	fx := newFixture(t, map[string]string{"src/app/Main.php": "<?php\n"})
	fx.reg.AddType(project.EnvAll, `x\A`)
	fx.project.Settings().SetBool(project.KeyUseImports, false)

	res, err := fx.runner(nil).Run(context.Background(), project.EnvDev, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Imports)
	assert.Empty(t, res.Rewritten())
	assert.Equal(t, "<?php\n", fx.read(t, "src/app/Main.php"))
}

func TestRunRestoresSources(t *testing.T) {
	fx := newFixture(t, map[string]string{
		"src/app/Main.php":        "<?php use stale\\Thing;\n",
		"src/app/Main.php.source": "<?php\n",
		"src/lib/Util.php.source": "<?php\n// util\n",
	})
	fx.project.Settings().SetBool(project.KeyUseImports, false)

	res, err := fx.runner(nil).Run(context.Background(), project.EnvDev, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app/Main.php", "src/lib/Util.php"}, res.Restored)
	assert.Equal(t, "<?php\n", fx.read(t, "src/app/Main.php"))
	assert.Equal(t, "<?php\n// util\n", fx.read(t, "src/lib/Util.php"))
}

func TestRunCanceled(t *testing.T) {
	fx := newFixture(t, nil)
	fx.reg.AddType(project.EnvAll, `x\A`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.runner(nil).Run(ctx, project.EnvDev, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fx.calls)
}

type stageRecorder struct {
	observability.NoopPipelineHooks
	events []string
}

func (r *stageRecorder) OnStageStart(_ context.Context, stage, env string) {
	r.events = append(r.events, "start "+stage+" "+env)
}

func (r *stageRecorder) OnStageComplete(_ context.Context, stage, _ string, _ time.Duration, err error) {
	r.events = append(r.events, fmt.Sprintf("done %s err=%v", stage, err != nil))
}

func TestRunReportsStages(t *testing.T) {
	rec := &stageRecorder{}
	observability.SetPipelineHooks(rec)
	t.Cleanup(observability.Reset)

	fx := newFixture(t, map[string]string{"src/app/Main.php": "<?php\n"})
	fx.reg.AddType(project.EnvAll, `x\A`)

	_, err := fx.runner(gradle.New()).Run(context.Background(), project.EnvProd, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start restore prod", "done restore err=false",
		"start resolve prod", "done resolve err=false",
		"start apply prod", "done apply err=false",
		"start hooks prod", "done hooks err=false",
		"start imports prod", "done imports err=false",
	}, rec.events)
}
