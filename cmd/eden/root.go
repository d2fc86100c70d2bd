// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gaissmai/eden"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	out io.Writer

	configDir string
	verbose   bool
	output    string

	cfg *viper.Viper
	log *zap.Logger

	// newLogger is replaced in tests.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newRootCmd returns the command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, newLogger: newLogger, log: zap.NewNop()}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eden",
		Short:         "eden exercises bitsets, small vectors, allocators and type traits",
		Version:       eden.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configDir, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			log, err := a.newLogger(cfg.GetBool(cfgKeyVerbose))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log.With(zap.String("cmd", cmd.Name()))

			if cf := cfg.ConfigFileUsed(); cf != "" {
				a.log.Debug("config loaded", zap.String("file", cf))
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "directory of eden.yaml (default: working directory)")
	pf.BoolVarP(&a.verbose, cfgKeyVerbose, "v", false, "debug logging")
	pf.StringVarP(&a.output, cfgKeyOutput, "o", defaultOutput, "output format: text or yaml")

	root.AddCommand(a.versionCmd())
	root.AddCommand(a.bitsetCmd())
	root.AddCommand(a.vectorCmd())
	root.AddCommand(a.traitsCmd())

	return root
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the eden version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.render(struct {
				Version string `yaml:"version"`
			}{eden.Version}, func(w io.Writer) {
				fmt.Fprintln(w, "eden", eden.Version)
			})
		},
	}
}
