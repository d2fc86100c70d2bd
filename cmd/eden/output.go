// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var errOutputFormat = errors.New("unknown output format")

// render writes v as YAML or calls text, depending on the output setting.
func (a *app) render(v any, text func(io.Writer)) error {
	switch format := a.cfg.GetString(cfgKeyOutput); format {
	case "text", "":
		text(a.out)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errOutputFormat, format)
	}
}
