package types

import tea "github.com/charmbracelet/bubbletea"

// Screen identifies one page of the application
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenCarousel
	ScreenCalendar
)

func (s Screen) String() string {
	switch s {
	case ScreenCarousel:
		return "carousel"
	case ScreenCalendar:
		return "calendar"
	default:
		return "landing"
	}
}

// Title is the heading shown for the screen
func (s Screen) Title() string {
	switch s {
	case ScreenCarousel:
		return "Carousel"
	case ScreenCalendar:
		return "Calendar"
	default:
		return "Home"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Screen() Screen
	MenuIndex() int
	MenuSize() int
	HelpVisible() bool
}

// ModeHandler handles input for a specific screen
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}

// Zone is a clickable rectangle of the rendered view
type Zone struct {
	X, Y          int
	Width, Height int
	Action        Action
}

// Contains reports whether the cell (x, y) falls inside the zone
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.Width && y >= z.Y && y < z.Y+z.Height
}

// Offset returns the zone moved by dx, dy
func (z Zone) Offset(dx, dy int) Zone {
	z.X += dx
	z.Y += dy
	return z
}
