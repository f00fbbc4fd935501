package input

import (
	"github.com/charmbracelet/bubbles/key"

	"folio/internal/ui/input/types"
)

// KeyMap holds every binding of the application
type KeyMap struct {
	// Global
	Quit  key.Binding
	Force key.Binding
	Back  key.Binding
	Help  key.Binding

	// Landing
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Carousel key.Binding
	Calendar key.Binding

	// Carousel
	SlidePrev key.Binding
	SlideNext key.Binding

	// Calendar
	MonthPrev key.Binding
	MonthNext key.Binding
	Today     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
		Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Carousel: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "carousel")),
		Calendar: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "calendar")),

		// The carousel recognizes the arrow keys only
		SlidePrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous slide")),
		SlideNext: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next slide")),

		MonthPrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous month")),
		MonthNext: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

// ScreenKeys adapts the key map to help.KeyMap for one screen
type ScreenKeys struct {
	km     KeyMap
	screen types.Screen
}

// ForScreen returns the bindings relevant to screen
func (km KeyMap) ForScreen(screen types.Screen) ScreenKeys {
	return ScreenKeys{km: km, screen: screen}
}

// ShortHelp implements help.KeyMap
func (s ScreenKeys) ShortHelp() []key.Binding {
	switch s.screen {
	case types.ScreenCarousel:
		return []key.Binding{s.km.SlidePrev, s.km.SlideNext, s.km.Back, s.km.Help, s.km.Quit}
	case types.ScreenCalendar:
		return []key.Binding{s.km.MonthPrev, s.km.MonthNext, s.km.Today, s.km.Back, s.km.Help, s.km.Quit}
	default:
		return []key.Binding{s.km.Up, s.km.Down, s.km.Open, s.km.Help, s.km.Quit}
	}
}

// FullHelp implements help.KeyMap
func (s ScreenKeys) FullHelp() [][]key.Binding {
	global := []key.Binding{s.km.Back, s.km.Help, s.km.Quit, s.km.Force}
	switch s.screen {
	case types.ScreenCarousel:
		return [][]key.Binding{{s.km.SlidePrev, s.km.SlideNext}, global}
	case types.ScreenCalendar:
		return [][]key.Binding{{s.km.MonthPrev, s.km.MonthNext, s.km.Today}, global}
	default:
		return [][]key.Binding{{s.km.Up, s.km.Down, s.km.Open, s.km.Carousel, s.km.Calendar}, global}
	}
}
