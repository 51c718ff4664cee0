package entities

import (
	"fmt"
	"time"
)

// Period identifies one ISO week, the reporting granularity of the
// reliability monitor.
type Period struct {
	Year int
	Week int
}

// PeriodOf returns the period a timestamp falls into
func PeriodOf(t time.Time) Period {
	year, week := t.ISOWeek()
	return Period{Year: year, Week: week}
}

// IsZero reports whether the period is unset
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Week == 0
}

// Before reports whether p is chronologically earlier than other
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Week < other.Week
}

// Prev returns the preceding ISO week, crossing year boundaries as needed
func (p Period) Prev() Period {
	if p.Week > 1 {
		return Period{Year: p.Year, Week: p.Week - 1}
	}
	prevYear := p.Year - 1
	return Period{Year: prevYear, Week: isoWeeksInYear(prevYear)}
}

// String method renders the period as e.g. "2024-W07"
func (p Period) String() string {
	return fmt.Sprintf("%04d-W%02d", p.Year, p.Week)
}

// isoWeeksInYear returns 52 or 53. December 28th is always in the last
// ISO week of its year.
func isoWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
