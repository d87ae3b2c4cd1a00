package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	statusSpec   string
	statusOutput string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every asset in the spec",
	Long: `Shows each asset's type, output path and state: current, drifted, missing,
unsupported (unknown type) or error (failed to render).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		client, err := newClient(statusSpec, statusOutput, s)
		if err != nil {
			return err
		}

		statuses, err := client.Status(cmd.Context())
		if err != nil {
			return err
		}
		if len(statuses) == 0 {
			info("No assets declared.")
			return nil
		}

		data := pterm.TableData{{"ASSET", "TYPE", "PATH", "STATE"}}
		for _, st := range statuses {
			data = append(data, []string{st.Asset, string(st.Kind), st.Path, stateLabel(st.State)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func stateLabel(state string) string {
	switch state {
	case "current":
		return pterm.Green(state)
	case "drifted", "unsupported":
		return pterm.Yellow(state)
	default:
		return pterm.Red(state)
	}
}

func init() {
	addSpecFlags(statusCmd, &statusSpec, &statusOutput)
	rootCmd.AddCommand(statusCmd)
}
