package files

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/providers"
)

// Collection base names, looked up with each supported extension in turn.
const (
	RostersName   = "teams_detail"
	StandingsName = "standings"
	ScheduleName  = "schedule"
)

var extensions = []string{".json", ".yaml", ".yml"}

// Provider loads the league dataset from a filesystem. Files are expected at
// {root}/teams_detail.json, {root}/standings.json and {root}/schedule.json;
// YAML variants are accepted in place of JSON.
type Provider struct {
	fsys   fs.FS
	name   string
	logger *slog.Logger
}

// New constructs a Provider reading from fsys and reporting itself as name.
func New(fsys fs.FS, name string, logger *slog.Logger) *Provider {
	if name == "" {
		name = "files"
	}
	return &Provider{fsys: fsys, name: name, logger: logger}
}

// NewDir constructs a Provider rooted at a directory on disk.
func NewDir(dir string, logger *slog.Logger) *Provider {
	return New(os.DirFS(dir), "files", logger)
}

// LoadDataset reads and decodes the three collections.
func (p *Provider) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	if p == nil || p.fsys == nil {
		return domain.Dataset{}, &providers.DatasetError{Provider: "files", Err: errors.New("filesystem not configured")}
	}

	var ds domain.Dataset
	if err := p.load(ctx, RostersName, &ds.Rosters); err != nil {
		return domain.Dataset{}, err
	}
	if err := p.load(ctx, StandingsName, &ds.Standings); err != nil {
		return domain.Dataset{}, err
	}
	if err := p.load(ctx, ScheduleName, &ds.Schedule); err != nil {
		return domain.Dataset{}, err
	}

	providers.LogWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "dataset loaded",
		slog.Int("rosters", len(ds.Rosters)),
		slog.Int("standings", len(ds.Standings)),
		slog.Int(logging.FieldCount, len(ds.Schedule)),
	)
	return ds, nil
}

func (p *Provider) load(ctx context.Context, name string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, ext := range extensions {
		file := path.Clean(name + ext)
		data, err := fs.ReadFile(p.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return &providers.DatasetError{Provider: p.name, Name: file, Err: err}
		}
		if err := decode(ext, data, payload); err != nil {
			return &providers.DatasetError{Provider: p.name, Name: file, Err: err}
		}
		return nil
	}
	return &providers.DatasetError{Provider: p.name, Name: name, Err: providers.ErrMissingDataset}
}

func decode(ext string, data []byte, payload any) error {
	switch ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, payload)
	default:
		return json.Unmarshal(data, payload)
	}
}
