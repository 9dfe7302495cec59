package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/project"
	"github.com/matzehuels/prebuild/pkg/settings"
)

// bundlesCommand creates the bundles command with list, types and add.
func (c *CLI) bundlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "Inspect and register project bundles",
	}

	cmd.AddCommand(c.bundlesListCommand())
	cmd.AddCommand(c.bundlesTypesCommand())
	cmd.AddCommand(c.bundlesAddCommand())

	return cmd
}

// paneCollector is the terminal stand-in for the IDE settings editor.
type paneCollector struct {
	panes []any
}

func (e *paneCollector) AddSettingsPane(pane any) { e.panes = append(e.panes, pane) }

func (c *CLI) bundlesListCommand() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show registered bundles",
		Long:  `Show the bundle settings pane. With --env, also list the bundles a pre-compile for that environment would apply, in order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			editor := &paneCollector{}
			ws.project.Lifecycle().FireMakeSettings(editor)
			for _, pane := range editor.panes {
				if panel, ok := pane.(*settings.Panel); ok {
					fmt.Println(renderPanel(panel.Items(), panel.UseImports()))
				}
			}

			if !cmd.Flags().Changed("env") {
				return nil
			}
			env, err := project.ParseEnvironment(envName)
			if err != nil {
				return err
			}
			set := ws.resolver.ResolveAll(env)
			printInfo("Resolved for %s", StyleHighlight.Render(env.String()))
			for i, b := range set.Bundles() {
				line := fmt.Sprintf("%2d. %s", i+1, b.TypeID())
				if _, missing := b.(*bundle.Missing); missing {
					printWarning("%s (unknown type)", line)
					continue
				}
				printDetail("%s", line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", "", "also show the resolved bundles for an environment")

	return cmd
}

func (c *CLI) bundlesTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List known bundle types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			for _, id := range ws.types.IDs() {
				b := ws.types.Default(id)
				printKeyValue(b.Name(), StyleDim.Render(id))
				if desc := b.Description(); desc != "" {
					printDetail("%s", desc)
				}
			}
			return nil
		},
	}
}

func (c *CLI) bundlesAddCommand() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "add TYPE",
		Short: "Register a bundle for an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := project.ParseEnvironment(envName)
			if err != nil {
				return err
			}
			id := bundle.CanonicalTypeID(args[0])
			if err := errors.ValidateTypeID(id); err != nil {
				return err
			}

			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			if !ws.types.Has(id) {
				return errors.New(errors.ErrCodeUnknownBundle, "unknown bundle type %s", id)
			}
			b, added := ws.registry.AddType(env, id)
			if !added {
				printWarning("%s is already registered for %s or a specific environment", id, env)
				return nil
			}
			if err := ws.project.Save(); err != nil {
				return err
			}
			printSuccess("Added %s [%s]", StyleHighlight.Render(b.Name()), env)
			printFile(ws.store.Path(id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", string(project.EnvAll), "environment to register the bundle for")

	return cmd
}
