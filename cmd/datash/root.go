package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datashell/internal/config"
	"datashell/internal/value"
)

type app struct {
	configPath string
	logger     *zap.Logger
	engine     *value.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "datash",
		Short:         "Convert data between JSON, YAML, TOML, CSV, XML, HTML and more",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")

	root.AddCommand(newConvertCmd(a), newFormatsCmd(), newCheckCmd(a))

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}

	a.logger = logger
	a.engine = value.NewEngine(value.WithConfig(cfg), value.WithLogger(logger))

	return nil
}
