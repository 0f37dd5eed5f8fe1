package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/nativebuild/internal/model"
)

// File is the parsed build-step file. Either section may be absent; a
// command only requires its own.
type File struct {
	Shaders *ShaderSection `json:"shaders,omitempty" yaml:"shaders,omitempty"`
	Sources *SourceSection `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// ShaderSection holds the arguments of the shader build step.
type ShaderSection struct {
	// Compiler is the shader compiler executable. A bare name is looked
	// up in PATH and left untouched by path resolution.
	Compiler string `json:"compiler" yaml:"compiler"`

	// Input is the directory scanned for *.glsl files.
	Input string `json:"input" yaml:"input"`

	// Output is the directory receiving generated headers.
	Output string `json:"output" yaml:"output"`
}

// SourceSection holds the arguments of the source collector.
type SourceSection struct {
	// Output is the flat destination directory.
	Output string `json:"output" yaml:"output"`

	// Inputs are the directories collected from, in copy order.
	Inputs []string `json:"inputs" yaml:"inputs"`
}

// Load reads and parses the build-step file at path. Relative paths in
// the file are resolved against the file's own directory.
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist
// and ExitInvalidConfig if it cannot be parsed.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("build-step file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read build-step file: %w", err)
	}

	f, err := parse(path, data)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidConfig,
			fmt.Sprintf("failed to parse build-step file %s", path),
			err,
		)
	}

	f.resolve(filepath.Dir(path))
	return f, nil
}

// parse decodes data as YAML or JSONC depending on the file extension.
func parse(path string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// resolve makes every relative path in f relative to base.
func (f *File) resolve(base string) {
	if s := f.Shaders; s != nil {
		// Only a compiler given as a path is resolved; a bare name
		// stays a PATH lookup.
		if strings.ContainsRune(s.Compiler, '/') || strings.ContainsRune(s.Compiler, filepath.Separator) {
			s.Compiler = join(base, s.Compiler)
		}
		s.Input = join(base, s.Input)
		s.Output = join(base, s.Output)
	}
	if s := f.Sources; s != nil {
		s.Output = join(base, s.Output)
		for i := range s.Inputs {
			s.Inputs[i] = join(base, s.Inputs[i])
		}
	}
}

func join(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// ShaderArgs returns the validated shaders section.
func (f *File) ShaderArgs() (*ShaderSection, error) {
	if f.Shaders == nil {
		return nil, model.NewCLIError(model.ExitInvalidConfig, "build-step file has no shaders section")
	}
	if err := f.Shaders.Validate(); err != nil {
		return nil, err
	}
	return f.Shaders, nil
}

// SourceArgs returns the validated sources section.
func (f *File) SourceArgs() (*SourceSection, error) {
	if f.Sources == nil {
		return nil, model.NewCLIError(model.ExitInvalidConfig, "build-step file has no sources section")
	}
	if err := f.Sources.Validate(); err != nil {
		return nil, err
	}
	return f.Sources, nil
}

// Validate checks that every field of the shaders section is set.
func (s *ShaderSection) Validate() error {
	var missing []string
	if s.Compiler == "" {
		missing = append(missing, "compiler")
	}
	if s.Input == "" {
		missing = append(missing, "input")
	}
	if s.Output == "" {
		missing = append(missing, "output")
	}
	if len(missing) > 0 {
		return model.NewCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("shaders section is missing: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// Validate checks that the sources section names an output directory
// and at least one non-empty input directory.
func (s *SourceSection) Validate() error {
	if s.Output == "" {
		return model.NewCLIError(model.ExitInvalidConfig, "sources section is missing: output")
	}
	if len(s.Inputs) == 0 {
		return model.NewCLIError(model.ExitInvalidConfig, "sources section is missing: inputs")
	}
	for i, in := range s.Inputs {
		if in == "" {
			return model.NewCLIError(model.ExitInvalidConfig,
				fmt.Sprintf("sources section: inputs[%d] is empty", i))
		}
	}
	return nil
}
