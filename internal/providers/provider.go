package providers

import (
	"context"

	"github.com/mpl-id/mpl-chat-service/internal/domain"
)

// DatasetProvider loads the league dataset the service answers from. It is
// called once at startup; the result is never refreshed.
type DatasetProvider interface {
	LoadDataset(ctx context.Context) (domain.Dataset, error)
}
