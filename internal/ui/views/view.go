package views

import (
	"folio/internal/ui/input/types"
)

// ReadyMarker is printed once the first frame is drawn when running under the e2e driver
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        types.Screen
	MenuIndex     int
	Calendar      CalendarState
	Carousel      CarouselState
	ShowHelp      bool
	HelpContent   string
	HelpBar       string
	StatusMessage string
	ReadyMarker   bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	landingRender  *LandingRenderer
	calendarRender *CalendarRenderer
	carouselRender *CarouselRenderer
	popupRender    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		landingRender:  NewLandingRenderer(styles),
		calendarRender: NewCalendarRenderer(styles),
		carouselRender: NewCarouselRenderer(styles),
		popupRender:    NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and its clickable zones
func (r *Renderer) Render(state ViewState) Frame {
	header := r.styles.Title.Render("folio")
	if state.Screen != types.ScreenLanding {
		header += r.styles.Breadcrumb.Render(" › " + state.Screen.Title())
	}
	if state.ReadyMarker {
		header += " " + r.styles.Dim.Render(ReadyMarker)
	}

	frame := Frame{Lines: []string{header, ""}}

	var footer []string
	if state.StatusMessage != "" {
		footer = append(footer, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpBar != "" {
		footer = append(footer, r.styles.Help.Render(state.HelpBar))
	}

	if state.ShowHelp {
		bodyHeight := state.Height - frame.Height() - len(footer)
		frame = frame.Append(r.popupRender.RenderPopup(state.HelpContent, state.Width, bodyHeight))
		return frame.AppendLines(footer...)
	}

	var body Frame
	switch state.Screen {
	case types.ScreenCalendar:
		body = r.calendarRender.Render(state.Calendar)
	case types.ScreenCarousel:
		body = r.carouselRender.Render(state.Carousel, state.Width, state.Height)
	default:
		body = r.landingRender.Render(state.MenuIndex)
	}
	frame = frame.Append(body.Center(state.Width))

	// Keep the footer at the bottom of the screen
	if gap := state.Height - frame.Height() - len(footer); gap > 0 {
		frame = frame.AppendLines(make([]string, gap)...)
	}
	return frame.AppendLines(footer...)
}
