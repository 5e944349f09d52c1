package main

import (
	"context"
	"os"

	"scoop-harvester/bootstrap"
	"scoop-harvester/config"
	"scoop-harvester/utils/logger"
)

func main() {
	log := logger.Init(logger.LoadConfigFromEnv())

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if len(cfg.Feeds.Sources) == 0 {
		log.Error("no feeds configured, set SCOOP_FEEDS")
		os.Exit(1)
	}

	ctx := context.Background()

	deps, err := bootstrap.BuildDependencies(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	if err := bootstrap.Run(ctx, deps); err != nil {
		log.Error("service exited with error", "error", err)
		os.Exit(1)
	}
}
