package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// LandingMode moves the menu cursor and opens pages
type LandingMode struct {
	up, down, open     key.Binding
	carousel, calendar key.Binding
}

func NewLandingMode(up, down, open, carousel, calendar key.Binding) *LandingMode {
	return &LandingMode{up: up, down: down, open: open, carousel: carousel, calendar: calendar}
}

func (m *LandingMode) Name() string {
	return "landing"
}

func (m *LandingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.up):
		return []types.Action{types.MenuMoveAction{Delta: -1}}, true
	case key.Matches(msg, m.down):
		return []types.Action{types.MenuMoveAction{Delta: 1}}, true
	case key.Matches(msg, m.open):
		return []types.Action{types.MenuSelectAction{}}, true
	case key.Matches(msg, m.carousel):
		return []types.Action{types.OpenScreenAction{Screen: types.ScreenCarousel}}, true
	case key.Matches(msg, m.calendar):
		return []types.Action{types.OpenScreenAction{Screen: types.ScreenCalendar}}, true
	}
	return nil, false
}
