// Package cli — shaders.go implements the build-shaders command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/nativebuild/internal/shader"
)

// NewShadersCommand creates the root command of the build-shaders binary.
func NewShadersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-shaders <compiler> <input-dir> <output-dir>",
		Short: "Compile GLSL shaders into C headers",
		Long: `Run a shader compiler once for every *.glsl file in <input-dir>,
writing <output-dir>/<name>.glsl.h for each shader.

The compiler is invoked as
  <compiler> -V <input-dir>/<name>.glsl --vn k<name>_glsl_ -o <output-dir>/<name>.glsl.h

The first failing compilation stops the build and its exit code becomes
the exit code of build-shaders. Compiler output is discarded unless
--verbose is set.

Examples:
  build-shaders glslangValidator src/shaders gen/shaders
  build-shaders --config build.yaml`,

		Args: argsOrConfig(cobra.ExactArgs(3)),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				f, err := loadConfig()
				if err != nil {
					return err
				}
				s, err := f.ShaderArgs()
				if err != nil {
					return err
				}
				return runShaders(s.Compiler, s.Input, s.Output)
			}
			return runShaders(args[0], args[1], args[2])
		},
	}

	return newRootCommand(cmd)
}

// runShaders builds every shader in inputDir with the given compiler.
func runShaders(compilerPath, inputDir, outputDir string) error {
	VerboseLog("Building shaders from %s into %s with %s", inputDir, outputDir, compilerPath)

	c := shader.NewCompiler(compilerPath)
	c.Logf = VerboseLog
	return c.Build(inputDir, outputDir)
}
