package domain

import (
	"fmt"
	"time"

	"folio/internal/transition"
)

// MonthKeyLayout is the layout of a month's stable key
const MonthKeyLayout = "2006-01"

// Month is a calendar month, the position type of the calendar screen
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "yyyy-MM" key such as "2024-01"
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthKeyLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// AddMonths returns the month n months after m (n may be negative)
func (m Month) AddMonths(n int) Month {
	total := m.Year*12 + int(m.Month-1) + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return Month{Year: year, Month: time.Month(month + 1)}
}

// Next returns the following month
func (m Month) Next() Month { return m.AddMonths(1) }

// Prev returns the preceding month
func (m Month) Prev() Month { return m.AddMonths(-1) }

// Compare orders months chronologically
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}
	return 0
}

// First returns midnight of the first day of the month in loc
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Last returns midnight of the last day of the month in loc
func (m Month) Last(loc *time.Location) time.Time {
	return m.First(loc).AddDate(0, 1, -1)
}

// Contains reports whether t falls inside the month
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Key returns the stable "yyyy-MM" key
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// String returns the display title, e.g. "January 2024"
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Months is the unbounded domain of calendar months
type Months struct{}

func (Months) Next(m Month) (Month, bool) { return m.Next(), true }
func (Months) Prev(m Month) (Month, bool) { return m.Prev(), true }
func (Months) Compare(a, b Month) int     { return a.Compare(b) }
func (Months) Key(m Month) string         { return m.Key() }

var _ transition.Domain[Month] = Months{}
