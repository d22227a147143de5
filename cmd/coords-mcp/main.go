package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/coord-tools/internal/config"
	"github.com/ironsheep/coord-tools/internal/logging"
	"github.com/ironsheep/coord-tools/internal/server"
	"github.com/ironsheep/coord-tools/internal/telemetry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("coords-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("coords-mcp - MCP server for 2D coordinate conversion and transforms")
			fmt.Println()
			fmt.Println("Usage: coords-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COORDS_CONFIG=path.yml        Load settings from a YAML file")
			fmt.Println("  COORDS_ARCTAN=atan|atan2      Arctangent used for polar angles")
			fmt.Println("  COORDS_LOG__LEVEL=debug       Log level (logs go to stderr)")
			fmt.Println("  COORDS_METRICS__PORT=9100     Serve prometheus metrics on this port")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

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

	logger.Debug("starting coords-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit),
		zap.Stringer("arctan", cfg.ArctanMode))

	metrics := telemetry.New()
	if cfg.Metrics.Port > 0 {
		if _, err := metrics.Expose(cfg.Metrics.Port, logger); err != nil {
			logger.Fatal("metrics endpoint", zap.Error(err))
		}
		logger.Info("serving metrics", zap.Int("port", cfg.Metrics.Port))
	}

	server.Version = Version
	srv := server.New(server.Options{
		Arctan:  cfg.ArctanMode,
		Metrics: metrics,
		Logger:  logger,
	})
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
