package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// settingsCommand creates the settings command.
func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change project settings",
	}

	cmd.AddCommand(c.settingsImportsCommand())

	return cmd
}

// settingsImportsCommand toggles use-import injection. Without an argument it
// prints the current state.
func (c *CLI) settingsImportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "imports [on|off]",
		Short:     "Enable or disable bundle import injection",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer ws.Close()

			if len(args) == 0 {
				printKeyValue("use imports", onOff(ws.panel.UseImports()))
				return nil
			}

			var v bool
			switch strings.ToLower(args[0]) {
			case "on", "true", "yes":
				v = true
			case "off", "false", "no":
				v = false
			default:
				return fmt.Errorf("invalid value %q: expected on or off", args[0])
			}

			ws.panel.SetUseImports(v)
			if err := ws.project.Save(); err != nil {
				return err
			}
			printSuccess("Import injection %s", onOff(v))
			return nil
		},
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
