// Package calendar enumerates the day cells shown for a month.
package calendar

import (
	"strings"
	"time"

	"folio/internal/domain"
)

// Day is one cell of the month grid
type Day struct {
	Date    time.Time
	InMonth bool // false for leading and trailing days of adjacent months
	Today   bool
}

// Week is seven consecutive days starting at the configured week start
type Week [7]Day

// Grid returns the weeks covering m, from the start of the week containing the
// first of the month to the end of the week containing its last day.
func Grid(m domain.Month, weekStart time.Weekday, now time.Time) []Week {
	loc := now.Location()
	start := startOfWeek(m.First(loc), weekStart)
	end := startOfWeek(m.Last(loc), weekStart).AddDate(0, 0, 6)
	today := dateOf(now)

	var weeks []Week
	for day := start; !day.After(end); {
		var w Week
		for i := range w {
			w[i] = Day{
				Date:    day,
				InMonth: m.Contains(day),
				Today:   day.Equal(today),
			}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, w)
	}
	return weeks
}

// Weekdays returns two-letter weekday labels starting at weekStart
func Weekdays(weekStart time.Weekday) [7]string {
	var labels [7]string
	for i := range labels {
		labels[i] = ((weekStart + time.Weekday(i)) % 7).String()[:2]
	}
	return labels
}

// ParseWeekday accepts full or two/three letter English weekday names
func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) || strings.EqualFold(s, name[:2]) {
			return d, true
		}
	}
	return time.Sunday, false
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
