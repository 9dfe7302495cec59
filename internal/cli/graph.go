package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prebuild/pkg/project"
	"github.com/matzehuels/prebuild/pkg/render/dot"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphCommand exports the resolved bundle graph of an environment.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		envName  string
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the resolved bundle graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := project.ParseEnvironment(envName)
			if err != nil {
				return err
			}
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", format)
			}

			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			set := ws.resolver.ResolveAll(env)
			c.Logger.Debug("resolved bundle graph", "env", env, "bundles", set.Len(), "edges", len(set.Edges()))

			data := []byte(dot.ToDOT(set, dot.Options{Detailed: detailed, Title: "Bundles [" + env.String() + "]"}))
			if format == formatSVG {
				if data, err = dot.RenderSVG(string(data)); err != nil {
					return err
				}
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", string(project.EnvDev), "environment to resolve")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format (dot, svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show versions and import counts")

	return cmd
}
