package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/bianoble/unity-assets/internal/config"
	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/history"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/pkg/unityassets"
)

// loadSettings reads and merges the settings layers. A missing project
// settings file is not an error.
func loadSettings() (*config.Settings, []config.ConfigLayerInfo, error) {
	s, layers, err := config.LoadLayered(config.DiscoverOptions{ProjectPath: configPath})
	if err != nil {
		return nil, layers, errors.Wrap(err, "loading settings")
	}
	return s, layers, nil
}

// newClient creates a library client for specPath.
func newClient(specPath, outputDir string, s *config.Settings) (*unityassets.Client, error) {
	return unityassets.New(unityassets.Options{
		SpecPath:  specPath,
		OutputDir: outputDir,
		Settings:  s,
		Logger:    logger.ComponentLogger("cli"),
	})
}

// openHistory opens the run history database in the configured data dir.
func openHistory(s *config.Settings) (*history.Store, error) {
	dir := s.DataDir
	if dir == "" {
		dir = config.DefaultDataDir()
	}
	return history.Open(history.Path(dir))
}


// printVerbose returns true if detailed output is requested.
func printVerbose() bool {
	return verbose
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		pterm.Printfln(format, args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		pterm.Printfln("  "+pterm.Gray(format), args...)
	}
}

// success prints a highlighted line unless quiet mode is active.
func success(format string, args ...any) {
	if !quiet {
		pterm.Printfln(pterm.Green(format), args...)
	}
}

// warnf prints a warning unless quiet mode is active.
func warnf(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stderr, pterm.Yellow("warning: ")+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, pterm.Red("error: ")+format+"\n", args...)
}
