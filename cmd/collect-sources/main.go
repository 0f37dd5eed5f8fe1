// Package main is the entry point for the collect-sources tool.
//
// collect-sources copies C and C++ sources and headers from several
// directories into one flat output directory.
package main

import (
	"github.com/shinji-kodama/nativebuild/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewSourcesCommand())
}
