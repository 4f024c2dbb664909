package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the host logger: development output with --verbose,
// otherwise production JSON on stderr at warn level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	return loggerConfig(verbose).Build()
}

func loggerConfig(verbose bool) zap.Config {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		return cfg
	}
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(zapcore.WarnLevel)
	cfg.Sampling = nil
	return cfg
}
