// SPDX-License-Identifier: MPL-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/ast/astutil"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats for Render.
const (
	FormatCUE  Format = "cue"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by Render for unsupported formats.
var ErrUnknownFormat = errors.New("unknown config format")

// Format names a configuration output format.
type Format string

// Formats returns every supported output format.
func Formats() []Format {
	return []Format{FormatCUE, FormatYAML, FormatTOML, FormatJSON}
}

// Render serializes the effective configuration.
func Render(cfg *Config, f Format) ([]byte, error) {
	out := *cfg
	out.Env = maps.Clone(cfg.Env)
	if out.Env == nil {
		out.Env = map[string]string{}
	}

	switch f {
	case FormatCUE, "":
		v := cuecontext.New().Encode(out)
		if v.Err() != nil {
			return nil, fmt.Errorf("failed to encode config as CUE: %w", v.Err())
		}
		expr, ok := v.Syntax(cue.Final(), cue.Concrete(true)).(ast.Expr)
		if !ok {
			return nil, errors.New("failed to encode config as CUE: unexpected syntax node")
		}
		file, err := astutil.ToFile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config as CUE: %w", err)
		}
		return format.Node(file)
	case FormatYAML:
		return yaml.Marshal(out)
	case FormatTOML:
		return toml.Marshal(out)
	case FormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w %q (valid: cue, yaml, toml, json)", ErrUnknownFormat, f)
	}
}
