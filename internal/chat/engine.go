package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mpl-id/mpl-chat-service/internal/augment"
	"github.com/mpl-id/mpl-chat-service/internal/domain/players"
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/metrics"
	"github.com/mpl-id/mpl-chat-service/internal/timeutil"
)

// League is the read-only data the engine answers from.
type League interface {
	Rosters() []teams.Roster
	Roster(code teams.Code) (teams.Roster, bool)
	TopStandings(limit int) []standings.Entry
	FixturesOn(date string) []schedule.Match
}

// Augmenter rewrites or generates answer text. Implementations must not
// return bare errors; see augment.Gateway.
type Augmenter interface {
	Polish(ctx context.Context, text string) augment.Outcome
	Explain(ctx context.Context, question string) augment.Outcome
}

// Intent names the rule that produced an answer.
type Intent string

const (
	IntentEmpty      Intent = "empty"
	IntentOutOfScope Intent = "out_of_scope"
	IntentRoleAll    Intent = "role_all"
	IntentTeamRole   Intent = "team_role"
	IntentTeamRoster Intent = "team_roster"
	IntentStandings  Intent = "standings"
	IntentSchedule   Intent = "schedule"
	IntentGeneric    Intent = "generic"
	IntentDefault    Intent = "default"
)

// Query is a message after normalization and alias resolution. Team and
// Role are empty when unresolved.
type Query struct {
	Raw  string
	Text string
	Team teams.Code
	Role players.Role
}

// Result is the answer plus the intent that produced it.
type Result struct {
	Answer string
	Intent Intent
	Query  Query
}

// Engine resolves free-text questions into answers. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	league    League
	augmenter Augmenter
	clock     clockwork.Clock
	location  *time.Location
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to compute "today".
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLocation sets the timezone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics records each answered intent on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(e *Engine) {
		e.metrics = rec
	}
}

// NewEngine builds an Engine. A nil augmenter behaves as an unconfigured
// gateway.
func NewEngine(league League, augmenter Augmenter, opts ...Option) *Engine {
	if augmenter == nil {
		augmenter = augment.NewGateway(nil)
	}
	e := &Engine{
		league:    league,
		augmenter: augmenter,
		clock:     clockwork.NewRealClock(),
		location:  defaultLocation(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(timeutil.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Parse normalizes raw and resolves its team and role independently.
func Parse(raw string) Query {
	q := Query{Raw: raw, Text: Normalize(raw)}
	if team, ok := ResolveTeam(q.Text); ok {
		q.Team = team
	}
	if role, ok := ResolveRole(q.Text); ok {
		q.Role = role
	}
	return q
}

// Answer never fails: every path ends in answer text.
func (e *Engine) Answer(ctx context.Context, raw string) Result {
	q := Parse(raw)
	res := e.resolve(ctx, q)

	e.metrics.RecordIntent(string(res.Intent))
	logger := logging.FromContext(ctx, e.logger)
	if logger != nil {
		logger.Debug("chat answered",
			logging.FieldIntent, string(res.Intent),
			logging.FieldTeam, string(q.Team),
			logging.FieldRole, string(q.Role),
		)
	}
	return res
}

func (e *Engine) resolve(ctx context.Context, q Query) Result {
	if q.Text == "" {
		return Result{Answer: msgEmpty, Intent: IntentEmpty, Query: q}
	}
	if !InScope(q.Text) {
		return Result{Answer: msgOutOfScope, Intent: IntentOutOfScope, Query: q}
	}
	for _, r := range rules {
		if r.match(q) {
			return Result{Answer: r.answer(e, ctx, q), Intent: r.intent, Query: q}
		}
	}
	return Result{Answer: msgUnrecognized, Intent: IntentDefault, Query: q}
}

func (e *Engine) today() string {
	return timeutil.LocaleToday(e.clock.Now(), e.location)
}
