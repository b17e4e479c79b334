package main

import (
	"github.com/joho/godotenv"

	"resume-analyzer-desktop/internal/config"
	"resume-analyzer-desktop/internal/gui"
	"resume-analyzer-desktop/internal/logging"
)

func main() {
	// A .env file is optional; environment overrides still apply without one.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
		cfg.ApplyEnvOverrides()
	}

	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Info().Str("server_url", cfg.ServerURL).Msg("Starting Resume Analyzer")

	gui.NewApp(cfg, logger).Run()
}
