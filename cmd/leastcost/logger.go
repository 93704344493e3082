package main

import (
	"go.uber.org/zap"
)

// newLogger builds a production JSON logger, or a console logger at debug
// level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func withLogger(g *globalFlags, fn func(*zap.Logger) error) error {
	log, err := newLogger(g.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()
	return fn(log)
}
