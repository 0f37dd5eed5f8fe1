package shader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/nativebuild/internal/model"
)

// Pattern is the glob matched against the input directory.
const Pattern = "*.glsl"

// Output holds the streams captured from one compiler invocation.
// Stdout and stderr are kept apart rather than merged.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner starts a process and waits for it to finish.
//
// A non-zero exit must be reported as an error implementing
// ExitCode() int, which *exec.ExitError does.
type Runner interface {
	Run(name string, args ...string) (Output, error)
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct{}

// Run executes name with args and captures its stdout and stderr
// separately. Nothing is written to the parent's own streams.
func (ExecRunner) Run(name string, args ...string) (Output, error) {
	// #nosec G204 -- the compiler path is the tool's whole purpose
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

// Compiler drives the shader build step for one compiler binary.
type Compiler struct {
	// Path is the compiler executable, either a path or a name looked
	// up in PATH.
	Path string

	// Runner launches the compiler. NewCompiler sets it to ExecRunner.
	Runner Runner

	// Logf receives trace output (invocations and captured streams).
	// It may be nil.
	Logf func(format string, args ...interface{})
}

// NewCompiler returns a Compiler that launches path through os/exec.
func NewCompiler(path string) *Compiler {
	return &Compiler{Path: path, Runner: ExecRunner{}}
}

// SymbolPrefix derives the --vn symbol prefix for a shader file name:
// "k" followed by the base name with every "." replaced by "_".
// The compiler receives this prefix with a trailing "_" appended.
//
//	SymbolPrefix("blit.glsl")      == "kblit_glsl"
//	SymbolPrefix("a.frag.v2.glsl") == "ka_frag_v2_glsl"
func SymbolPrefix(name string) string {
	return "k" + strings.ReplaceAll(filepath.Base(name), ".", "_")
}

// HeaderPath returns the header the compiler is asked to write for
// inputFile: <outputDir>/<base name>.h.
func HeaderPath(outputDir, inputFile string) string {
	return filepath.Join(outputDir, filepath.Base(inputFile)+".h")
}

// Arguments returns the compiler arguments for a single shader, in the
// fixed order -V <input> --vn <prefix>_ -o <header>.
func Arguments(inputFile, outputDir string) []string {
	return []string{
		"-V", inputFile,
		"--vn", SymbolPrefix(inputFile) + "_",
		"-o", HeaderPath(outputDir, inputFile),
	}
}

// Discover lists the *.glsl entries of inputDir, one level deep.
//
// Names starting with "." are skipped, as a shell glob would skip them.
// A directory that does not exist, or whose path is not a valid glob
// pattern, yields no files and no error.
func Discover(inputDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(inputDir, Pattern))
	if err != nil {
		if errors.Is(err, filepath.ErrBadPattern) {
			return nil, nil
		}
		return nil, err
	}

	files := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// Build compiles every shader in inputDir into a header in outputDir.
//
// outputDir is created first if needed. Shaders are compiled one at a
// time in discovery order. If the compiler exits non-zero, Build stops
// and returns a silent model.CLIError whose Code is the compiler's exit
// code. A compiler that cannot be started is returned as a regular
// model.CLIError with ExitGeneralError.
func (c *Compiler) Build(inputDir, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	files, err := Discover(inputDir)
	if err != nil {
		return fmt.Errorf("failed to list shaders in %s: %w", inputDir, err)
	}
	c.logf("Found %d shader(s) in %s", len(files), inputDir)

	for _, file := range files {
		if err := c.compile(file, outputDir); err != nil {
			return err
		}
	}
	return nil
}

// compile runs the compiler for a single shader file.
func (c *Compiler) compile(inputFile, outputDir string) error {
	args := Arguments(inputFile, outputDir)
	c.logf("Running %s %s", c.Path, strings.Join(args, " "))

	out, err := c.runner().Run(c.Path, args...)
	c.logStream("stdout", out.Stdout)
	c.logStream("stderr", out.Stderr)
	if err == nil {
		return nil
	}

	// A process that ran and exited non-zero hands us its status. A
	// negative code means it was killed by a signal and has none.
	var exit interface{ ExitCode() int }
	if errors.As(err, &exit) && exit.ExitCode() > 0 {
		return model.ExitStatus(
			model.ExitCode(exit.ExitCode()),
			fmt.Sprintf("shader compiler failed on %s", inputFile),
			err,
		)
	}

	return model.WrapCLIError(
		model.ExitGeneralError,
		fmt.Sprintf("failed to run shader compiler %s", c.Path),
		err,
	)
}

func (c *Compiler) runner() Runner {
	if c.Runner == nil {
		return ExecRunner{}
	}
	return c.Runner
}

func (c *Compiler) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c *Compiler) logStream(name string, data []byte) {
	if text := strings.TrimSpace(string(data)); text != "" {
		c.logf("compiler %s:\n%s", name, text)
	}
}
