package fixture

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/providers/files"
)

//go:embed data/*.json
var dataFS embed.FS

// Provider serves a static dataset bundled with the binary, useful for local
// runs and tests when no data directory is configured.
type Provider struct {
	inner *files.Provider
}

// New creates a fixture provider over the embedded dataset.
func New(logger *slog.Logger) *Provider {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Provider{inner: files.New(sub, "fixture", logger)}
}

// LoadDataset decodes the embedded dataset.
func (p *Provider) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	return p.inner.LoadDataset(ctx)
}
