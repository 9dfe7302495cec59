package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prebuild/internal/config"
	"github.com/matzehuels/prebuild/pkg/buildinfo"
	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/bundle/std"
	"github.com/matzehuels/prebuild/pkg/bundleconf"
	"github.com/matzehuels/prebuild/pkg/cache"
	"github.com/matzehuels/prebuild/pkg/gradle"
	"github.com/matzehuels/prebuild/pkg/phpsrc"
	"github.com/matzehuels/prebuild/pkg/pipeline"
	"github.com/matzehuels/prebuild/pkg/project"
	"github.com/matzehuels/prebuild/pkg/settings"
)

// appName is the application name used for directories and display.
const appName = "prebuild"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	projectDir string
	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		projectDir: ".",
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) loadConfig() error {
	if c.Config != nil {
		return nil
	}
	cfg, err := config.NewLoader().LoadWithDefaults(c.configFile)
	if err != nil {
		return err
	}
	c.Config = cfg
	installHooks(c.Logger)
	c.Logger.Debug("starting", buildinfo.LogFields()...)
	return nil
}

// workspace is an opened project with its bundle state loaded and its
// lifecycle wired.
type workspace struct {
	project   *project.Project
	types     *bundle.Types
	registry  *bundle.Registry
	resolver  *bundle.Resolver
	store     *bundleconf.Store
	panel     *settings.Panel
	behaviour *pipeline.Behaviour
	ledger    cache.Cache
	// script is nil when no build tool is configured.
	script *gradle.Script
}

// openWorkspace opens the project and registers every bundle with a config file.
func (c *CLI) openWorkspace(ctx context.Context) (*workspace, error) {
	if err := c.loadConfig(); err != nil {
		return nil, err
	}
	p, err := project.Open(c.projectDir)
	if err != nil {
		return nil, err
	}

	types, err := c.loadTypes(p)
	if err != nil {
		return nil, err
	}

	reg := bundle.NewRegistry(types)
	store := bundleconf.NewStore(p, types, c.Logger)
	n, err := store.Load(reg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded bundle configs", "count", n, "dir", store.Dir())

	ledger, err := c.newCache()
	if err != nil {
		return nil, err
	}

	ws := &workspace{
		project:  p,
		types:    types,
		registry: reg,
		resolver: bundle.NewResolver(reg),
		store:    store,
		panel:    settings.NewPanel(p, reg),
		ledger:   ledger,
	}

	var bt bundle.BuildTool
	if c.Config.UsesGradle() {
		ws.script = gradle.New()
		bt = ws.script
	}
	rw := phpsrc.NewRewriter(p, ledger, c.Logger)
	ws.behaviour = &pipeline.Behaviour{
		Runner:  pipeline.NewRunner(p, ws.resolver, rw, bt, c.Logger),
		Store:   store,
		Panel:   ws.panel,
		Context: ctx,
	}
	ws.behaviour.Attach(p)
	return ws, nil
}

// Close releases the rewrite ledger.
func (w *workspace) Close() error {
	return w.ledger.Close()
}

// loadTypes registers the standard catalog, then configured catalogs, then
// the project catalog. Later catalogs override earlier definitions.
func (c *CLI) loadTypes(p *project.Project) (*bundle.Types, error) {
	types, err := std.Types()
	if err != nil {
		return nil, fmt.Errorf("load standard catalog: %w", err)
	}

	paths := append([]string(nil), c.Config.Catalogs...)
	if local := p.File(project.CatalogFile); fileExists(local) {
		paths = append(paths, local)
	}
	for _, path := range paths {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		catalog, err := bundle.LoadCatalog(expanded)
		if err != nil {
			return nil, err
		}
		catalog.Register(types)
		c.Logger.Debug("registered catalog", "path", expanded, "bundles", len(catalog.Bundles))
	}
	return types, nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.Config.NoCache || c.Config.CacheDir == "" {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(c.Config.CacheDir)
	if err != nil {
		c.Logger.Warn("rewrite ledger disabled", "dir", c.Config.CacheDir, "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
