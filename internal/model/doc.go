// Package model defines the exit codes and the error type shared by the
// nativebuild commands.
//
// Both utilities communicate their outcome to the calling build system
// through the process exit status alone, so the only "domain" types here
// are ExitCode and CLIError, which carries an exit code up to the CLI
// layer where it is turned into os.Exit.
package model
