package views

import (
	"fmt"
	"strings"
	"time"

	"folio/internal/calendar"
	"folio/internal/domain"
	"folio/internal/transition"
	"folio/internal/ui/input/types"
)

// cellWidth is the width of one day column
const cellWidth = 4

// CalendarWidth is the inner width of the calendar card
const CalendarWidth = 7 * cellWidth

// CalendarState contains what the calendar renderer needs
type CalendarState struct {
	Transition transition.State[domain.Month]
	Progress   float64 // 1 just after a request, 0 when settled
	WeekStart  time.Weekday
	Now        time.Time
}

// CalendarRenderer renders the month card
type CalendarRenderer struct {
	styles *Styles
}

// NewCalendarRenderer creates a new calendar renderer
func NewCalendarRenderer(styles *Styles) *CalendarRenderer {
	return &CalendarRenderer{styles: styles}
}

// Render draws the card. While a transition is in flight the month title and
// the day grid slide; the chevrons and weekday labels stay in place.
func (r *CalendarRenderer) Render(state CalendarState) Frame {
	s := state.Transition
	sign := s.Direction.Sign()

	title := r.slide([]string{r.title(s.Previous)}, []string{r.title(s.Position)}, state, sign)
	grid := r.slide(r.grid(s.Previous, state), r.grid(s.Position, state), state, sign)

	prev := r.styles.Chevron.Render("‹")
	next := r.styles.Chevron.Render("›")
	// Chevrons overlay the sliding title at both ends
	header := prev + cut(title[0], 1, CalendarWidth-1) + next

	labels := calendar.Weekdays(state.WeekStart)
	var weekdays strings.Builder
	for _, l := range labels {
		weekdays.WriteString(r.styles.Weekday.Render(fmt.Sprintf(" %s ", l)))
	}

	inner := Frame{Lines: []string{header, "", weekdays.String(), ""}}
	inner = inner.AppendLines(grid...)
	inner = inner.
		WithZone(types.Zone{X: 0, Y: 0, Width: 3, Height: 1, Action: types.NavigateAction{Request: types.RequestRetreat}}).
		WithZone(types.Zone{X: CalendarWidth - 3, Y: 0, Width: 3, Height: 1, Action: types.NavigateAction{Request: types.RequestAdvance}})

	return r.card(inner)
}

func (r *CalendarRenderer) slide(exiting, entering []string, state CalendarState, sign int) []string {
	if !state.Transition.InFlight || state.Progress <= 0 {
		return entering
	}
	panels, from, to := Pair(exiting, entering, sign)
	return Compose(panels, from, to, state.Progress, CalendarWidth)
}

func (r *CalendarRenderer) title(m domain.Month) string {
	return center(r.styles.MonthTitle.Render(m.String()), CalendarWidth)
}

func (r *CalendarRenderer) grid(m domain.Month, state CalendarState) []string {
	weeks := calendar.Grid(m, state.WeekStart, state.Now)
	lines := make([]string, len(weeks))
	for i, w := range weeks {
		var b strings.Builder
		for _, d := range w {
			cell := fmt.Sprintf("%3d ", d.Date.Day())
			switch {
			case !d.InMonth:
				b.WriteString(r.styles.OutsideDay.Render(cell))
			case d.Today:
				b.WriteString(r.styles.Today.Render(cell))
			default:
				b.WriteString(r.styles.Day.Render(cell))
			}
		}
		lines[i] = b.String()
	}
	return lines
}

// card wraps inner in the bordered card and shifts its zones accordingly
func (r *CalendarRenderer) card(inner Frame) Frame {
	boxed := NewFrame(r.styles.Card.Render(inner.String()))
	dx := r.styles.Card.GetBorderLeftSize() + r.styles.Card.GetPaddingLeft()
	dy := r.styles.Card.GetBorderTopSize() + r.styles.Card.GetPaddingTop()
	for _, z := range inner.Zones {
		boxed.Zones = append(boxed.Zones, z.Offset(dx, dy))
	}
	return boxed
}
