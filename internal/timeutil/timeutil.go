package timeutil

import (
	"fmt"
	"time"
)

// DefaultTimezone is where the league plays; "today" is computed there.
const DefaultTimezone = "Asia/Jakarta"

// FormatLocaleDate renders a date the way the id-ID locale prints short
// dates (d/m/yyyy, no zero padding). Schedule dates are stored in this form.
func FormatLocaleDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// LocaleToday returns today's date in loc, formatted with FormatLocaleDate.
// A nil loc means UTC.
func LocaleToday(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatLocaleDate(now.In(loc))
}
