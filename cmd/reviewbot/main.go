package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	anthropicadapter "github.com/diffwatch/reviewbot/internal/adapter/driven/anthropic"
	githubadapter "github.com/diffwatch/reviewbot/internal/adapter/driven/github"
	"github.com/diffwatch/reviewbot/internal/adapter/driving/action"
	"github.com/diffwatch/reviewbot/internal/application"
	"github.com/diffwatch/reviewbot/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast before any network call).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"model", cfg.Model,
		"exclude_patterns", cfg.ExcludePatterns,
		"event_path", cfg.EventPath,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Load the triggering event payload.
	event, err := action.LoadEvent(cfg.EventPath)
	if err != nil {
		return err
	}
	slog.Info("event loaded",
		"action", event.Action,
		"owner", event.Owner,
		"repo", event.Repo,
		"number", event.Number,
	)

	// 4. Wire adapters.
	ghClient := githubadapter.NewClient(cfg.GitHubToken)
	reviewer := anthropicadapter.NewClient(cfg.AnthropicAPIKey, cfg.Model, cfg.MaxTokens)

	// 5. Run the review pipeline. Unsupported actions no-op inside Run.
	pipeline := application.NewPipeline(ghClient, reviewer, cfg.ExcludePatterns)
	return pipeline.Run(ctx, event)
}
