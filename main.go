package main

import (
	"log/slog"

	"github.com/soocke/autodraw-go/app"
	"github.com/soocke/autodraw-go/config"
)

const configPath = "autodraw.json"

func main() {
	// Defaults apply when the file is missing or invalid.
	cfg, cfgErr := config.Load(configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "error", cfgErr)
	}

	application := app.NewApp("AutoDraw", 860, 680, cfg, logger)
	application.Start()
}
