// Package main is the entry point for the build-shaders tool.
//
// build-shaders runs an external GLSL compiler over a directory of
// shaders and emits one C header per shader. All functionality lives in
// the internal/cli and internal/shader packages.
//
// Build-time variables (version, commit, date) are injected via ldflags.
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

	cli.Execute(cli.NewShadersCommand())
}
