package league

import (
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// Store defines the read-only contract for the league dataset.
type Store interface {
	ListRosters() []teams.Roster
	GetRoster(code teams.Code) (teams.Roster, bool)
	ListStandings() []standings.Entry
	ListFixtures() schedule.Fixtures
}

// Service coordinates league lookups using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Rosters returns every team roster in dataset order.
func (s *Service) Rosters() []teams.Roster {
	return s.store.ListRosters()
}

// Roster returns a single team's roster if present.
func (s *Service) Roster(code teams.Code) (teams.Roster, bool) {
	return s.store.GetRoster(code)
}

// TopStandings returns up to limit valid standings rows in upstream order.
func (s *Service) TopStandings(limit int) []standings.Entry {
	return standings.Top(s.store.ListStandings(), limit)
}

// FixturesOn returns the fixtures stored under exactly the given date string.
func (s *Service) FixturesOn(date string) []schedule.Match {
	return s.store.ListFixtures().On(date)
}
