package types

// Request is a navigation request for a paged screen
type Request string

const (
	RequestAdvance Request = "advance"
	RequestRetreat Request = "retreat"
	RequestJump    Request = "jump"
	RequestToday   Request = "today"
)

// NavigateAction asks the active screen's controller to move
type NavigateAction struct {
	Request Request
	Target  int // slide index for RequestJump
}

func (a NavigateAction) Type() string { return "navigate" }

// Menu actions
type MenuMoveAction struct {
	Delta int
}

func (a MenuMoveAction) Type() string { return "menu_move" }

type MenuSelectAction struct{}

func (a MenuSelectAction) Type() string { return "menu_select" }

// OpenScreenAction routes to a screen
type OpenScreenAction struct {
	Screen Screen
}

func (a OpenScreenAction) Type() string { return "open_screen" }

// BackAction returns to the landing screen
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
