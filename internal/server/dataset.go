package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpl-id/mpl-chat-service/internal/config"
	"github.com/mpl-id/mpl-chat-service/internal/providers"
	"github.com/mpl-id/mpl-chat-service/internal/providers/files"
	"github.com/mpl-id/mpl-chat-service/internal/providers/fixture"
	"github.com/mpl-id/mpl-chat-service/internal/store"
)

const (
	sourceFixture = "fixture"
	sourceFiles   = "files"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DatasetProvider {
	switch strings.ToLower(cfg.DataSource) {
	case sourceFixture, "":
		return fixture.New(logger)
	case sourceFiles:
		return files.NewDir(cfg.DataDir, logger)
	default:
		if logger != nil {
			logger.Warn("unknown data source, falling back to fixture", slog.String("data_source", cfg.DataSource))
		}
		return fixture.New(logger)
	}
}

// loadStore reads the dataset once. The returned store is never mutated.
func loadStore(ctx context.Context, provider providers.DatasetProvider) (*store.MemoryStore, error) {
	ds, err := provider.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return store.NewMemoryStore(ds), nil
}
