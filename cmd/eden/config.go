// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "eden"
	configFileType = "yaml"
	envPrefix      = "EDEN"

	cfgKeyOutput    = "output"
	cfgKeyVerbose   = "verbose"
	cfgKeyWidth     = "width"
	cfgKeyInline    = "inline"
	cfgKeyAllocator = "allocator"
	cfgKeyBudget    = "budget"

	defaultOutput    = "text"
	defaultWidth     = 64
	defaultInline    = 8
	defaultAllocator = "heap"
	defaultBudget    = 1 << 20
)

// loadConfig reads eden.yaml from configDir, the working directory if empty.
// A missing eden.yaml is not an error. Precedence is
// flag > EDEN_* env > eden.yaml > default.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyWidth, defaultWidth)
	v.SetDefault(cfgKeyInline, defaultInline)
	v.SetDefault(cfgKeyAllocator, defaultAllocator)
	v.SetDefault(cfgKeyBudget, defaultBudget)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir == "" {
		configDir = "."
	}
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	return v, nil
}
