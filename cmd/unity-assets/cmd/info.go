package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/internal/engine"
	"github.com/bianoble/unity-assets/internal/layout"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about unity-assets settings and output layout",
	Long: `Displays the unity-assets version, the settings chain, the data directory,
the Unity editor that would be used, and the folder each asset type is
written to (built-in and custom).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, layers, err := loadSettings()
		if err != nil {
			return err
		}

		result := engine.Info(version, s, layers, layout.New(s.Folders))

		fmt.Printf("unity-assets %s\n", result.Version)
		fmt.Println("  settings chain:")
		for _, layer := range result.ConfigChain {
			status := "not found"
			if layer.Loaded {
				status = "loaded"
			}
			fmt.Printf("    %-10s %s (%s)\n", layer.Level+":", layer.Path, status)
		}
		fmt.Printf("  data dir:      %s\n", result.DataDir)
		if result.UnityError != "" {
			fmt.Printf("  unity:         not found (%s)\n", result.UnityError)
		} else {
			fmt.Printf("  unity:         %s\n", result.UnityPath)
		}

		fmt.Println("\nOutput folders:")
		for _, f := range result.Folders {
			custom := ""
			if f.IsCustom {
				custom = " (custom)"
			}
			fmt.Printf("  %-20s → %s/*%s%s\n", f.Kind, f.Folder, f.Extension, custom)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
