package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

// Handler turns key and mouse messages into actions
type Handler struct {
	global types.ModeHandler
	modes  map[types.Screen]types.ModeHandler
}

// New creates a handler for km
func New(km KeyMap) *Handler {
	h := &Handler{
		global: modes.NewGlobalMode(km.Quit, km.Force, km.Back, km.Help),
		modes:  make(map[types.Screen]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ScreenLanding] = modes.NewLandingMode(km.Up, km.Down, km.Open, km.Carousel, km.Calendar)
	h.modes[types.ScreenCarousel] = modes.NewCarouselMode(km.SlidePrev, km.SlideNext)
	h.modes[types.ScreenCalendar] = modes.NewCalendarMode(km.MonthPrev, km.MonthNext, km.Today)

	return h
}

// HandleKey resolves a key against the global bindings first, then the screen's
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if actions, consumed := h.global.HandleKey(msg, ctx); consumed {
		return actions
	}

	handler := h.modes[ctx.Screen()]
	if handler == nil {
		return nil
	}
	actions, _ := handler.HandleKey(msg, ctx)
	return actions
}

// HandleMouse resolves a left click against the clickable zones of the current frame
func (h *Handler) HandleMouse(msg tea.MouseMsg, zones []types.Zone) []types.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	// Later zones are drawn on top
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Contains(msg.X, msg.Y) {
			return []types.Action{zones[i].Action}
		}
	}
	return nil
}
