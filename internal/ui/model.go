package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/animation"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/transition"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	screen        inputtypes.Screen
	width         int
	height        int
	menuIndex     int
	showHelp      bool
	inPagerMode   bool // tracks if we're currently in pager mode
	statusMessage string
	readyMarker   bool

	// One controller per paged screen, alive for the whole program
	calendar *pager[domain.Month]
	carousel *pager[int]

	help         help.Model
	keys         input.KeyMap
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	now          func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// Option configures a Model
type Option func(*Model)

// WithScreen selects the screen shown first
func WithScreen(s inputtypes.Screen) Option {
	return func(m *Model) { m.screen = s }
}

// WithClock replaces time.Now, used for "today"
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithReadyMarker adds the e2e ready marker to the header
func WithReadyMarker(on bool) Option {
	return func(m *Model) { m.readyMarker = on }
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	keys := input.DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		keys:         keys,
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(),
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
	}
	m.helpRenderer = NewHelpRenderer(m.renderer.Styles())

	for _, opt := range opts {
		opt(m)
	}

	months := transition.NewController[domain.Month](domain.Months{}, cfg.InitialMonth(m.now()))
	m.calendar = newPager(inputtypes.ScreenCalendar, months, cfg.CalendarAnimation(), bus)

	deck := domain.Deck{Size: len(cfg.Carousel.Slides)}
	start := cfg.Carousel.InitialIndex
	if !deck.Valid(start) {
		start = 0
	}
	slides := transition.NewController[int](deck, start)
	m.carousel = newPager(inputtypes.ScreenCarousel, slides, cfg.CarouselAnimation(), bus)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Close detaches the model from its controllers
func (m *Model) Close() {
	m.calendar.close()
	m.carousel.close()
}

// Screen implements inputtypes.Context
func (m *Model) Screen() inputtypes.Screen { return m.screen }

// MenuIndex implements inputtypes.Context
func (m *Model) MenuIndex() int { return m.menuIndex }

// MenuSize implements inputtypes.Context
func (m *Model) MenuSize() int { return len(views.Menu) }

// HelpVisible implements inputtypes.Context
func (m *Model) HelpVisible() bool { return m.showHelp }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("folio")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.processActions(m.inputHandler.HandleKey(msg, m))

	case tea.MouseMsg:
		if m.showHelp || m.width == 0 {
			return m, nil
		}
		zones := m.renderer.Render(m.viewState()).Zones
		return m, m.processActions(m.inputHandler.HandleMouse(msg, zones))

	case animation.FrameMsg:
		switch {
		case m.calendar.owns(msg):
			return m, m.calendar.frame(msg)
		case m.carousel.owns(msg):
			return m, m.carousel.frame(msg)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the inline popup
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
			return m, m.setStatus("Pager unavailable, showing inline help")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.navigate(a)

	case inputtypes.MenuMoveAction:
		m.menuIndex = max(0, min(m.menuIndex+a.Delta, len(views.Menu)-1))

	case inputtypes.MenuSelectAction:
		if m.menuIndex >= 0 && m.menuIndex < len(views.Menu) {
			m.setScreen(views.Menu[m.menuIndex].Screen)
		}

	case inputtypes.OpenScreenAction:
		m.setScreen(a.Screen)

	case inputtypes.BackAction:
		m.setScreen(inputtypes.ScreenLanding)

	case inputtypes.ToggleHelpAction:
		if m.showHelp {
			m.showHelp = false
			return nil
		}
		if m.helpOps.Available() {
			return m.fetchHelpPager(m.helpRenderer.RenderPagerContent(m.keys, m.screen))
		}
		m.showHelp = true

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(a inputtypes.NavigateAction) tea.Cmd {
	switch m.screen {
	case inputtypes.ScreenCalendar:
		switch a.Request {
		case inputtypes.RequestAdvance:
			return m.calendar.advance()
		case inputtypes.RequestRetreat:
			return m.calendar.retreat()
		case inputtypes.RequestToday:
			return m.calendar.jump(a.Request, domain.MonthOf(m.now()))
		}

	case inputtypes.ScreenCarousel:
		switch a.Request {
		case inputtypes.RequestAdvance:
			return m.carousel.advance()
		case inputtypes.RequestRetreat:
			return m.carousel.retreat()
		case inputtypes.RequestJump:
			return m.carousel.jump(a.Request, a.Target)
		}
	}
	return nil
}

func (m *Model) setScreen(s inputtypes.Screen) {
	if s == m.screen {
		return
	}
	from := m.screen
	m.screen = s
	// Returning home keeps the cursor on the page just left
	for i, item := range views.Menu {
		if item.Screen == from {
			m.menuIndex = i
		}
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.ScreenChangedEvent{From: from.String(), To: s.String()})
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// setStatus shows a message in the footer for a few seconds
func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) viewState() views.ViewState {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        m.screen,
		MenuIndex:     m.menuIndex,
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		ReadyMarker:   m.readyMarker,
		Calendar: views.CalendarState{
			Transition: m.calendar.state(),
			Progress:   m.calendar.progress(),
			WeekStart:  m.config.WeekStart(),
			Now:        m.now(),
		},
		Carousel: views.CarouselState{
			Transition: m.carousel.state(),
			Progress:   m.carousel.progress(),
			Slides:     m.config.Carousel.Slides,
		},
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.RenderHelpContent(m.keys, m.screen)
	}
	if m.config.UISettings.ShowHelpBar {
		state.HelpBar = m.help.View(m.keys.ForScreen(m.screen))
	}
	return state
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState()).String()
}

// Render returns a single frame of the given size, used for static output
func (m *Model) Render(width, height int) string {
	m.width, m.height = width, height
	m.help.Width = width
	return m.renderer.Render(m.viewState()).String()
}
