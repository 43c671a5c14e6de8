package store

import (
	"slices"

	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// MemoryStore holds an immutable snapshot of the league dataset. It is built
// once at startup and read concurrently without locking.
type MemoryStore struct {
	rosters   []teams.Roster
	byCode    map[teams.Code]int
	standings []standings.Entry
	fixtures  schedule.Fixtures
}

// NewMemoryStore copies the dataset into a new MemoryStore.
func NewMemoryStore(ds domain.Dataset) *MemoryStore {
	s := &MemoryStore{
		rosters:   slices.Clone(ds.Rosters),
		byCode:    make(map[teams.Code]int, len(ds.Rosters)),
		standings: slices.Clone(ds.Standings),
		fixtures:  slices.Clone(ds.Schedule),
	}
	for i, r := range s.rosters {
		// The first roster listed for a code wins.
		if _, ok := s.byCode[r.Team]; !ok {
			s.byCode[r.Team] = i
		}
	}
	return s
}

// ListRosters returns a copy of every roster in dataset order.
func (s *MemoryStore) ListRosters() []teams.Roster {
	return slices.Clone(s.rosters)
}

// GetRoster retrieves a roster by team code.
func (s *MemoryStore) GetRoster(code teams.Code) (teams.Roster, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return teams.Roster{}, false
	}
	return s.rosters[i], true
}

// ListStandings returns a copy of the standings table in upstream order.
func (s *MemoryStore) ListStandings() []standings.Entry {
	return slices.Clone(s.standings)
}

// ListFixtures returns a copy of the flattened schedule.
func (s *MemoryStore) ListFixtures() schedule.Fixtures {
	return slices.Clone(s.fixtures)
}

// Counts reports the size of each collection, for logging.
func (s *MemoryStore) Counts() (rosters, standingRows, fixtures int) {
	return len(s.rosters), len(s.standings), len(s.fixtures)
}
