// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sgl1d/fault"
)

const opLoadProblem = "LoadProblem"

// LoadProblem reads a yaml, json or toml problem file, rejects unknown keys
// and validates the result. A missing name defaults to the file's base name.
func LoadProblem(path string) (Problem, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Problem{}, fmt.Errorf("%s: %w", opLoadProblem, fault.Configuration("path", path, err))
	}

	var p Problem
	if err := v.UnmarshalExact(&p); err != nil {
		return Problem{}, fmt.Errorf("%s: %w", opLoadProblem,
			fault.Configuration("path", path, fmt.Errorf("%w: %w", ErrInvalidProblem, err)))
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := p.Validate(); err != nil {
		return Problem{}, fmt.Errorf("%s %s: %w", opLoadProblem, path, err)
	}

	return p, nil
}
