package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// GlobalMode handles keys available on every screen
type GlobalMode struct {
	quit  key.Binding
	force key.Binding
	back  key.Binding
	help  key.Binding
}

func NewGlobalMode(quit, force, back, help key.Binding) *GlobalMode {
	return &GlobalMode{quit: quit, force: force, back: back, help: help}
}

func (m *GlobalMode) Name() string {
	return "global"
}

func (m *GlobalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// While the help overlay is open any of its toggles closes it
	if ctx.HelpVisible() {
		switch {
		case key.Matches(msg, m.help), key.Matches(msg, m.back), key.Matches(msg, m.quit):
			return []types.Action{types.ToggleHelpAction{}}, true
		case key.Matches(msg, m.force):
			return []types.Action{types.QuitAction{}}, true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.force), key.Matches(msg, m.quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.back):
		if ctx.Screen() == types.ScreenLanding {
			return nil, false
		}
		return []types.Action{types.BackAction{}}, true
	}
	return nil, false
}
