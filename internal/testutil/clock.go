package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// FakeClockAt returns a clockwork fake clock frozen at t.
func FakeClockAt(t time.Time) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(t)
}

// Jakarta returns the league's timezone or fails loudly; intended for tests.
func Jakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic(err)
	}
	return loc
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
