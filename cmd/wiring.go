package cmd

import (
	"context"
	"log/slog"
	"time"

	"ecoclean/internal/domain/device"
	domainTip "ecoclean/internal/domain/tip"
	"ecoclean/internal/infrastructure/config"
	"ecoclean/internal/infrastructure/gemini"
	"ecoclean/internal/infrastructure/platform"
)

func newPlatform(cfg *config.Config, usage device.UsageRepository) *platform.Platform {
	return platform.New(platform.Options{
		DataPath:        cfg.DataPath,
		ProcPath:        cfg.ProcPath,
		PowerSupplyPath: cfg.PowerSupplyPath,
		UserAppsPath:    cfg.UserAppsPath,
		SystemAppsPath:  cfg.SystemAppsPath,
		AppDataPath:     cfg.AppDataPath,
		IgnoredPackages: cfg.IgnoredPackages,
	}, usage, platform.CommandLauncher{Command: cfg.IntentCommand})
}

// newGenerator returns nil when no credentials are available so the tip
// service falls back to the static table.
func newGenerator(ctx context.Context, cfg *config.Config) domainTip.Generator {
	client, err := gemini.NewClient(ctx, cfg.GeminiBaseURL, cfg.GeminiAPIKey)
	if err != nil {
		slog.Warn("Text generation disabled, using fallback tips", "error", err)
		return nil
	}
	return client
}

func tipTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TipTimeout) * time.Second
}
