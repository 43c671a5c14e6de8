package files

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
	"github.com/mpl-id/mpl-chat-service/internal/providers"
)

const (
	rostersJSON   = `[{"team":"ONIC","players":[{"name":"Kairi","role":"Jungler"},{"name":"Yeb","role":"Coach"}]}]`
	standingsJSON = `[{"teamName":"RRQ","matchPoint":10},{"teamName":"","matchPoint":5}]`
	scheduleJSON  = `[{"date":"19/10/2026","team1":"RRQ","team2":"ONIC"}]`
)

func TestLoadDatasetFromJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"teams_detail.json": {Data: []byte(rostersJSON)},
		"standings.json":    {Data: []byte(standingsJSON)},
		"schedule.json":     {Data: []byte(scheduleJSON)},
	}

	ds, err := New(fsys, "test", nil).LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	if len(ds.Rosters) != 1 || ds.Rosters[0].Team != teams.CodeONIC || len(ds.Rosters[0].Players) != 2 {
		t.Fatalf("unexpected rosters %+v", ds.Rosters)
	}
	if len(ds.Standings) != 2 || ds.Standings[1].Valid() {
		t.Fatalf("expected raw standings incl. invalid row, got %+v", ds.Standings)
	}
	if len(ds.Schedule) != 1 || ds.Schedule[0].Team2 != "ONIC" {
		t.Fatalf("unexpected schedule %+v", ds.Schedule)
	}
}

func TestLoadDatasetAcceptsYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"teams_detail.yaml": {Data: []byte("- team: RRQ\n  players:\n    - name: Skylar\n      role: Gold Laner\n")},
		"standings.yml":     {Data: []byte("- teamName: RRQ\n  matchPoint: 10\n")},
		"schedule.json":     {Data: []byte(`{"week1":[{"date":"19/10/2026","team1":"RRQ","team2":"ONIC"}]}`)},
	}

	ds, err := New(fsys, "test", nil).LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	if ds.Rosters[0].Players[0].Name != "Skylar" {
		t.Fatalf("unexpected rosters %+v", ds.Rosters)
	}
	if ds.Standings[0].Points() != 10 {
		t.Fatalf("unexpected standings %+v", ds.Standings)
	}
	if len(ds.Schedule) != 1 {
		t.Fatalf("expected flattened schedule, got %+v", ds.Schedule)
	}
}

func TestLoadDatasetMissingCollection(t *testing.T) {
	fsys := fstest.MapFS{
		"teams_detail.json": {Data: []byte(rostersJSON)},
	}

	_, err := New(fsys, "test", nil).LoadDataset(context.Background())
	if !errors.Is(err, providers.ErrMissingDataset) {
		t.Fatalf("expected missing dataset error, got %v", err)
	}
	dsErr, ok := providers.AsDatasetError(err)
	if !ok || dsErr.Name != StandingsName {
		t.Fatalf("expected standings to be reported missing, got %+v", dsErr)
	}
}

func TestLoadDatasetDecodeError(t *testing.T) {
	fsys := fstest.MapFS{
		"teams_detail.json": {Data: []byte("{bad json")},
	}
	if _, err := New(fsys, "test", nil).LoadDataset(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadDatasetHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(fstest.MapFS{}, "test", nil).LoadDataset(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestNewDirReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"teams_detail.json": rostersJSON,
		"standings.json":    standingsJSON,
		"schedule.json":     scheduleJSON,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	ds, err := NewDir(dir, nil).LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	if len(ds.Rosters) != 1 {
		t.Fatalf("expected 1 roster, got %d", len(ds.Rosters))
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	if _, err := p.LoadDataset(context.Background()); err == nil {
		t.Fatalf("expected error for nil provider")
	}
}
