// Package config loads build-step files: a single YAML or JSONC
// document holding the arguments of the shader build step and the
// source collector, so a build script can point both commands at one
// file instead of repeating positional arguments.
//
// Files ending in .yaml or .yml are parsed with gopkg.in/yaml.v3. Any
// other file is treated as JSONC and passed through
// github.com/tidwall/jsonc before encoding/json decodes it.
package config
