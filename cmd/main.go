package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"filmoteca/internal/services"
	"filmoteca/internal/session"
	"filmoteca/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config.toml, using defaults: %v", err)
		}
	}

	var provider *session.Provider
	var movieService services.Service

	if config.Auth.Domain != "" && config.Auth.ClientID != "" {
		if store, err := session.OpenStore(config.SessionPath()); err != nil {
			logger.Warnf("failed to open session store: %v", err)
		} else if p, err := session.NewProvider(session.ProviderOpts{
			Auth:     config.Auth,
			Audience: config.API.Audience,
			Store:    store,
			Logger:   logger,
		}); err == nil {
			provider = p
		}
	}

	if provider != nil && config.API.BaseURL != "" {
		if svc, err := services.NewMovieService(config.API.BaseURL, provider.AccessToken, nil); err == nil {
			movieService = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Provider: provider,
		Movies:   movieService,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "filmoteca",
		Usage:    "Manage your movie collection from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
