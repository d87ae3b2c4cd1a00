package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/pkg/unityassets"
)

var (
	checkSpec   string
	checkOutput string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that generated files match the spec",
	Long: `Renders the spec in memory and compares the result with the files on disk.
Reports any drift (files changed or missing).
Exit 0 if everything matches; exit non-zero on drift. Suitable for CI pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		client, err := newClient(checkSpec, checkOutput, s)
		if err != nil {
			return err
		}

		result, err := client.Check(cmd.Context())
		if err != nil {
			return err
		}

		if result.Clean {
			success("All generated files match the spec.")
			return nil
		}

		for _, d := range result.Drifted {
			info("  drifted   %s", d.Path)
			detail("expected: %s", d.Expected)
			detail("actual:   %s", d.Actual)
		}
		for _, m := range result.Missing {
			info("  missing   %s", m)
		}
		for _, e := range result.Errors {
			errorf("%s (%s): %s", e.Asset, e.Kind, e.Err)
		}

		total := len(result.Drifted) + len(result.Missing)
		return fmt.Errorf("check failed: %d file(s) out of sync, %d asset(s) failed", total, len(result.Errors))
	},
}

// addSpecFlags registers the flags that locate the spec and output directory.
func addSpecFlags(cmd *cobra.Command, specPath, output *string) {
	cmd.Flags().StringVar(specPath, "spec", unityassets.DefaultSpecPath, "path to the asset spec")
	cmd.Flags().StringVar(output, "output", "", "output directory (overrides the spec's outputDir)")
}

func init() {
	addSpecFlags(checkCmd, &checkSpec, &checkOutput)
	rootCmd.AddCommand(checkCmd)
}
