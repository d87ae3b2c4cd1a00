package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/internal/bridge"
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/internal/unityproject"
)

var bridgeProject string

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Manage the editor bridge script",
}

var bridgeInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the editor bridge into a Unity project",
	Long: `Writes ` + bridge.ScriptPath + ` and its .meta file into the Unity project.
The bridge reads the asset manifest and imports generated assets when Unity
runs in batch mode. generate installs it automatically before each editor run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, found, err := unityproject.Resolve(bridgeProject, ".")
		if err != nil {
			return err
		}
		if !found {
			return errors.WithHint(
				errors.Wrap(errors.ErrConfiguration, "no Unity project found"),
				"run inside a Unity project or pass --project")
		}

		inst, err := bridge.Install(project, logger.ComponentLogger("bridge"))
		if err != nil {
			return err
		}
		if inst.Written {
			success("Installed %s in %s", inst.Path, project)
		} else {
			info("Editor bridge in %s is up to date.", project)
		}
		return nil
	},
}

var bridgeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the editor bridge source",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := bridge.Render(bridge.DefaultData())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	},
}

func init() {
	bridgeInstallCmd.Flags().StringVar(&bridgeProject, "project", "", "Unity project path (default: detected from the current directory)")
	bridgeCmd.AddCommand(bridgeInstallCmd, bridgeShowCmd)
	rootCmd.AddCommand(bridgeCmd)
}
