package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/logger"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
	logJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "unity-assets",
	Short: "Generate Unity assets from a YAML spec",
	Long: `unity-assets turns a declarative YAML asset spec into Unity files:
C# scripts, ScriptableObject types and instances, materials, shaders,
prefabs and animation clips, each with a .meta file carrying a stable GUID.
When assets need the editor to import them, it installs a small editor
bridge and runs Unity in batch mode against the generated manifest.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unity-assets %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
		fmt.Printf("  config:  v%d\n", config.CurrentVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to settings file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	rootCmd.AddCommand(versionCmd)
}

// setup loads .env and configures output before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if noColor || os.Getenv("NO_COLOR") != "" {
		pterm.DisableStyling()
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	return logger.Initialize(logger.Options{
		JSON:    logJSON,
		Verbose: verbose,
		Quiet:   quiet,
	})
}

// Execute runs the root command. Interrupts cancel the command context so
// a running editor is stopped.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorf("%s", err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", h)
		}
		return err
	}
	return nil
}
