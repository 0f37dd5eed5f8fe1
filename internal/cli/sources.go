// Package cli — sources.go implements the collect-sources command.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/nativebuild/internal/collect"
)

// NewSourcesCommand creates the root command of the collect-sources binary.
func NewSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect-sources <output-dir> <input-dir>...",
		Short: "Copy C/C++ sources and headers into one directory",
		Long: `Copy every file with extension ` + strings.Join(collect.Extensions, ", ") + `
found directly in each <input-dir> into <output-dir>, keeping only the
file name. Input directories are processed in the order given; when two
contain a file with the same name, the later one wins. Existing files in
<output-dir> are never removed.

Examples:
  collect-sources gen/include third_party/lib/include third_party/lib/src
  collect-sources --config build.yaml`,

		Args: argsOrConfig(cobra.MinimumNArgs(2)),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				f, err := loadConfig()
				if err != nil {
					return err
				}
				s, err := f.SourceArgs()
				if err != nil {
					return err
				}
				return runSources(s.Output, s.Inputs)
			}
			return runSources(args[0], args[1:])
		},
	}

	return newRootCommand(cmd)
}

// runSources collects matching files from inputDirs into outputDir.
func runSources(outputDir string, inputDirs []string) error {
	VerboseLog("Collecting sources from %d director(ies) into %s", len(inputDirs), outputDir)

	c := collect.NewCollector()
	c.Logf = VerboseLog
	return c.Collect(outputDir, inputDirs)
}
