package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/prebuild/pkg/project"
)

// precompileCommand creates the precompile command, which fires the project
// pre-compile event and writes the resulting build script.
func (c *CLI) precompileCommand() *cobra.Command {
	var (
		envName string
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "precompile",
		Short: "Prepare bundles and sources for compilation",
		Long: `Run the pre-compile step for an environment: restore generated sources,
resolve bundles with their dependencies, write the build script, run bundle
hooks and inject bundle imports into src/app.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := project.ParseEnvironment(envName)
			if err != nil {
				return err
			}
			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			prog := newProgress(c.Logger)
			report := func(msg string) { printDetail("%s", msg) }
			if err := ws.project.Lifecycle().FirePreCompile(ws.project, env, report); err != nil {
				return err
			}

			if ws.script != nil {
				path := ws.project.File(c.Config.GradleFile)
				if err := ws.script.Save(path); err != nil {
					return err
				}
				printFile(path)
			}
			if !noSave {
				if err := ws.project.Save(); err != nil {
					return err
				}
			}
			prog.done("Pre-compile finished")

			if res := ws.behaviour.Last(); res != nil {
				printResult(res)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&envName, "env", "e", string(project.EnvDev), "target environment (all, dev, prod, desktop)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not write bundle configs afterwards")

	return cmd
}
