package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mpl-id/mpl-chat-service/internal/app/league"
	"github.com/mpl-id/mpl-chat-service/internal/augment"
	"github.com/mpl-id/mpl-chat-service/internal/chat"
	"github.com/mpl-id/mpl-chat-service/internal/config"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/metrics"
	"github.com/mpl-id/mpl-chat-service/internal/providers"
	"github.com/mpl-id/mpl-chat-service/internal/timeutil"
)

// BuildEngine loads the configured dataset and assembles a chat engine
// around it. It is shared by the HTTP server and the one-shot CLI.
func BuildEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, rec *metrics.Recorder) (*chat.Engine, error) {
	return buildEngine(ctx, cfg, selectProvider(cfg, logger), logger, rec)
}

func buildEngine(ctx context.Context, cfg config.Config, provider providers.DatasetProvider, logger *slog.Logger, rec *metrics.Recorder) (*chat.Engine, error) {
	ms, err := loadStore(ctx, provider)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		rosters, standingRows, fixtures := ms.Counts()
		logger.Info("dataset ready",
			slog.Int("rosters", rosters),
			slog.Int("standings", standingRows),
			slog.Int(logging.FieldCount, fixtures),
		)
	}

	engine := chat.NewEngine(
		league.NewService(ms),
		buildGateway(cfg.Augment, logger, rec),
		chat.WithLocation(resolveLocation(cfg.Timezone, logger)),
		chat.WithLogger(logger),
		chat.WithMetrics(rec),
	)
	return engine, nil
}

func buildGateway(cfg config.AugmentConfig, logger *slog.Logger, rec *metrics.Recorder) *augment.Gateway {
	opts := []augment.Option{
		augment.WithLogger(logger),
		augment.WithMetrics(rec),
		augment.WithTimeout(cfg.Timeout),
	}

	client, err := augment.NewOpenRouterClient(augment.ClientConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Referer: cfg.Referer,
		Title:   cfg.Title,
	})
	if err != nil {
		if logger != nil && errors.Is(err, augment.ErrNotConfigured) {
			logger.Info("text generation disabled, answers are served unpolished")
		}
		return augment.NewGateway(nil, opts...)
	}

	if logger != nil {
		logger.Info("text generation enabled", slog.String("model", cfg.Model))
	}
	return augment.NewGateway(client, opts...)
}

func resolveLocation(tz string, logger *slog.Logger) *time.Location {
	if loc := providers.ResolveTimezone(tz); loc != nil {
		return loc
	}
	if logger != nil {
		logger.Warn("invalid timezone, using default", slog.String("timezone", tz), slog.String("default", timeutil.DefaultTimezone))
	}
	if loc := providers.ResolveTimezone(timeutil.DefaultTimezone); loc != nil {
		return loc
	}
	return time.UTC
}
