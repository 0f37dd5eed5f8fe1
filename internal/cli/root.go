// Package cli implements the cobra commands behind the nativebuild binaries.
//
// Each binary (build-shaders, collect-sources) runs a single root command
// defined in its own file within this package. This file holds what the
// two share: global flags, verbose logging and the translation of errors
// into exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/nativebuild/internal/config"
	"github.com/shinji-kodama/nativebuild/internal/model"
)

// Global flag variables bound to persistent flags on the root command.
var (
	// jsonOutput switches error output on stderr to JSON.
	jsonOutput bool

	// verbose enables trace output on stderr, including the captured
	// output of the shader compiler.
	verbose bool

	// configPath points at an optional build-step file supplying the
	// arguments when none are given on the command line.
	configPath string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// stderr is where errors and verbose output go. Tests replace it.
var stderr io.Writer = os.Stderr

// newRootCommand applies the settings shared by every binary's root
// command and registers the global flags.
func newRootCommand(cmd *cobra.Command) *cobra.Command {
	// Errors are printed by Execute so that silent errors stay silent.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output errors in JSON format")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Read arguments from a YAML or JSONC build-step file")

	return cmd
}

// argsOrConfig accepts exactly the positional arguments check allows,
// or none at all when --config is set.
func argsOrConfig(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && configPath != "" {
			return nil
		}
		return check(cmd, args)
	}
}

// loadConfig loads the file named by --config.
func loadConfig() (*config.File, error) {
	VerboseLog("Loading build-step file %s", configPath)
	return config.Load(configPath)
}

// Execute runs the root command and exits the process with the code
// derived from its error. It never returns on failure.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// A failing compiler reports through its exit code alone.
	if !model.IsSilent(err) || verbose {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
		} else {
			printError(err.Error(), nil)
		}
	}
	os.Exit(int(model.ExitCodeOf(err)))
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(stderr, "[verbose] "+format+"\n", args...)
	}
}
