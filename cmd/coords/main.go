package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/coord-tools/internal/config"
	"github.com/ironsheep/coord-tools/internal/demo"
	"github.com/ironsheep/coord-tools/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	err = demo.Run(os.Stdout, demo.Options{
		Arctan:   cfg.ArctanMode,
		PlotPath: cfg.Plot.Path,
		PlotSize: cfg.Plot.Size,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}
