package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/animation"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/ui/input/types"
)

var fixedNow = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

type recorder struct {
	events []eventbus.DomainEvent
}

func (r *recorder) of(t eventbus.EventType) []eventbus.DomainEvent {
	var out []eventbus.DomainEvent
	for _, e := range r.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestModel(t *testing.T, screen types.Screen, mutate ...func(*config.Config)) (*Model, *recorder) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Animation.Disabled = true
	for _, fn := range mutate {
		fn(cfg)
	}

	bus := eventbus.New()
	rec := &recorder{}
	bus.SubscribeAll(func(e eventbus.DomainEvent) { rec.events = append(rec.events, e) })

	m := NewModel(bus, cfg, WithScreen(screen), WithClock(func() time.Time { return fixedNow }))
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, rec
}

// runFrames executes cmd and feeds every animation frame back into the model
// until no more frames are scheduled
func runFrames(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case animation.FrameMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

// collect runs cmd, unwrapping batches, and returns the resulting messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCarouselDropsRequestsWhileInFlight(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenCarousel)

	cmd := press(m, keyRight)
	require.NotNil(t, cmd)
	s := m.carousel.state()
	assert.Equal(t, 1, s.Position)
	assert.True(t, s.InFlight)

	// A second request before the frame arrives is dropped
	assert.Nil(t, press(m, keyRight))
	assert.Equal(t, 1, m.carousel.state().Position)

	dropped := rec.of(eventbus.EventNavigationDropped)
	require.Len(t, dropped, 1)
	assert.Equal(t, domain.DropInFlight, dropped[0].(eventbus.NavigationDroppedEvent).Reason)

	runFrames(m, cmd)
	assert.False(t, m.carousel.state().InFlight)
	require.Len(t, rec.of(eventbus.EventTransitionSettled), 1)

	runFrames(m, press(m, keyRight))
	assert.Equal(t, 2, m.carousel.state().Position)
}

func TestCarouselBoundaries(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenCarousel)

	assert.Nil(t, press(m, keyLeft))
	dropped := rec.of(eventbus.EventNavigationDropped)
	require.Len(t, dropped, 1)
	assert.Equal(t, domain.DropBoundary, dropped[0].(eventbus.NavigationDroppedEvent).Reason)

	for i := 0; i < 10; i++ {
		runFrames(m, press(m, keyRight))
	}
	assert.Equal(t, 5, m.carousel.state().Position)
	assert.Contains(t, ansi.Strip(m.View()), "6 / 6")
	assert.Len(t, rec.of(eventbus.EventNavigationAccepted), 5)
}

func TestCarouselIgnoresVimKeys(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenCarousel)

	assert.Nil(t, press(m, keyRunes("l")))
	assert.Nil(t, press(m, keyRunes("h")))
	assert.Equal(t, 0, m.carousel.state().Position)
	assert.Empty(t, rec.events)
}

func TestCarouselThumbnailClick(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCarousel)

	var target *types.Zone
	for _, z := range m.renderer.Render(m.viewState()).Zones {
		if a, ok := z.Action.(types.NavigateAction); ok && a.Request == types.RequestJump && a.Target == 3 {
			target = &z
			break
		}
	}
	require.NotNil(t, target, "thumbnail 3 should be clickable")

	_, cmd := m.Update(tea.MouseMsg{X: target.X, Y: target.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	s := m.carousel.state()
	assert.Equal(t, 3, s.Position)
	assert.Equal(t, 0, s.Previous)
	runFrames(m, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "4 / 6 · City 4")
}

func TestCalendarPaging(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenCalendar)
	assert.Contains(t, ansi.Strip(m.View()), "January 2024")

	for i := 0; i < 3; i++ {
		runFrames(m, press(m, keyRight))
	}
	assert.Equal(t, "2024-04", m.calendar.state().Key)
	assert.Contains(t, ansi.Strip(m.View()), "April 2024")

	runFrames(m, press(m, keyRunes("h")))
	assert.Equal(t, "2024-03", m.calendar.state().Key)

	runFrames(m, press(m, keyRunes("t")))
	assert.Equal(t, "2024-01", m.calendar.state().Key)
	last := rec.of(eventbus.EventNavigationAccepted)
	assert.Equal(t, eventbus.NavigationAcceptedEvent{
		Screen: "calendar", Request: "today", FromKey: "2024-03", ToKey: "2024-01", Direction: "backward",
	}, last[len(last)-1])

	// Already on today's month
	assert.Nil(t, press(m, keyRunes("t")))
	dropped := rec.of(eventbus.EventNavigationDropped)
	require.NotEmpty(t, dropped)
	assert.Equal(t, domain.DropUnchanged, dropped[len(dropped)-1].(eventbus.NavigationDroppedEvent).Reason)
}

func TestCalendarInitialMonthFromConfig(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCalendar, func(c *config.Config) {
		c.Calendar.InitialMonth = "1999-12"
	})
	assert.Equal(t, "1999-12", m.calendar.state().Key)

	runFrames(m, press(m, keyRight))
	assert.Contains(t, ansi.Strip(m.View()), "January 2000")
}

func TestAnimatedTransitionSettlesAfterFrames(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenCalendar, func(c *config.Config) {
		c.Animation.Disabled = false
		c.Animation.Calendar.MaxDuration = "50ms"
	})

	cmd := press(m, keyRight)
	assert.True(t, m.calendar.state().InFlight)
	assert.Equal(t, 1.0, m.calendar.progress())

	runFrames(m, cmd)
	assert.False(t, m.calendar.state().InFlight)
	assert.Equal(t, 0.0, m.calendar.progress())
	assert.Len(t, rec.of(eventbus.EventTransitionSettled), 1)
}

func TestStalledSpringStillSettles(t *testing.T) {
	// A spring that never moves and has no time limit
	m, rec := newTestModel(t, types.ScreenCarousel, func(c *config.Config) {
		c.Animation.Disabled = false
		c.Animation.Carousel = config.SpringSettings{Frequency: 0, Damping: 1, MaxDuration: "0s"}
	})

	runFrames(m, press(m, keyRight))
	require.False(t, m.carousel.state().InFlight)
	assert.Len(t, rec.of(eventbus.EventTransitionSettled), 1)

	runFrames(m, press(m, keyRight))
	assert.Equal(t, 2, m.carousel.state().Position)
	assert.Empty(t, rec.of(eventbus.EventNavigationDropped))
}

func TestFramesAreRoutedToTheirController(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCalendar)

	press(m, keyRight)
	assert.True(t, m.calendar.state().InFlight)

	// A frame carrying the carousel's identity cannot settle the calendar
	m.Update(animation.FrameMsg{ID: m.carousel.tween.ID(), Seq: 1})
	assert.True(t, m.calendar.state().InFlight)

	m.Update(animation.FrameMsg{ID: m.calendar.tween.ID(), Seq: 1})
	assert.False(t, m.calendar.state().InFlight)
}

func TestControllersSurviveScreenChanges(t *testing.T) {
	m, rec := newTestModel(t, types.ScreenLanding)

	runFrames(m, press(m, keyRunes("1")))
	assert.Equal(t, types.ScreenCarousel, m.Screen())
	runFrames(m, press(m, keyRight))

	press(m, keyEsc)
	assert.Equal(t, types.ScreenLanding, m.Screen())
	assert.Equal(t, 0, m.MenuIndex())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, keyEnter)
	assert.Equal(t, types.ScreenCalendar, m.Screen())

	press(m, keyEsc)
	assert.Equal(t, 1, m.MenuIndex())
	press(m, keyRunes("1"))
	assert.Equal(t, 1, m.carousel.state().Position)

	changes := rec.of(eventbus.EventScreenChanged)
	require.Len(t, changes, 5)
	assert.Equal(t, eventbus.ScreenChangedEvent{From: "landing", To: "carousel"}, changes[0])
}

func TestMenuCursorIsClamped(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenLanding)

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.MenuIndex())
	for i := 0; i < 5; i++ {
		press(m, keyRunes("j"))
	}
	assert.Equal(t, m.MenuSize()-1, m.MenuIndex())
}

func TestInlineHelp(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCarousel)

	assert.Nil(t, press(m, keyRunes("?")))
	assert.True(t, m.HelpVisible())
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "previous slide")
	assert.Contains(t, out, "jump to slide")

	// Navigation keys are swallowed while help is open
	press(m, keyRight)
	assert.Equal(t, 0, m.carousel.state().Position)

	press(m, keyEsc)
	assert.False(t, m.HelpVisible())
	assert.Equal(t, types.ScreenCarousel, m.Screen())
}

func TestHelpPagerFailureFallsBackToPopup(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCalendar)

	_, cmd := m.Update(helpPagerMsg{err: assert.AnError})
	assert.NotNil(t, cmd)
	assert.True(t, m.HelpVisible())
	assert.Contains(t, ansi.Strip(m.View()), "Pager unavailable")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, ansi.Strip(m.View()), "Pager unavailable")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCalendar)

	assert.Equal(t, []tea.Msg{tea.QuitMsg{}}, collect(press(m, keyRunes("q"))))
	assert.Equal(t, []tea.Msg{tea.QuitMsg{}}, collect(press(m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := NewModel(nil, nil)
	defer m.Close()
	assert.Equal(t, "Loading...", m.View())

	// A nil bus is allowed
	runFrames(m, m.carousel.advance())
	assert.Equal(t, 1, m.carousel.state().Position)
}

func TestReadyMarker(t *testing.T) {
	m := NewModel(nil, nil, WithReadyMarker(true))
	defer m.Close()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "__READY__")
}

func TestInvalidInitialIndexFallsBackToFirstSlide(t *testing.T) {
	m, _ := newTestModel(t, types.ScreenCarousel, func(c *config.Config) {
		c.Carousel.InitialIndex = 42
	})
	assert.Equal(t, 0, m.carousel.state().Position)
}
