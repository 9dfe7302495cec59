// Package cli implements the prebuild command-line interface.
//
// The CLI drives the bundle system of a project directory the way the IDE
// would: it loads bundle configs, fires project lifecycle events and renders
// the settings panel as text. It is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - precompile: Run the pre-compile step for an environment
//   - bundles: List, inspect and register bundles
//   - settings: Change project settings such as import injection
//   - graph: Export the resolved bundle graph as DOT or SVG
//   - cache: Manage the import rewrite ledger
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/prebuild/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "prebuild resolves project bundles and prepares sources for compilation",
		Long:         `prebuild manages the bundles of a project: it resolves their dependencies per build environment, wires them into the build script and injects their class imports into the application sources.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.projectDir, "project", "p", ".", "project directory")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ~/.config/prebuild/config.yaml)")

	root.AddCommand(c.precompileCommand())
	root.AddCommand(c.bundlesCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())

	return root
}
