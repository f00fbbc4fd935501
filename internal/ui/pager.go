package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/animation"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/transition"
	"folio/internal/ui/input/types"
)

// pager binds a transition controller to the tween that animates it and
// reports its navigation on the event bus
type pager[P any] struct {
	screen      types.Screen
	controller  *transition.Controller[P]
	tween       *animation.Tween
	bus         eventbus.EventBus
	request     types.Request
	unsubscribe func()
}

func newPager[P any](screen types.Screen, c *transition.Controller[P], opts animation.Options, bus eventbus.EventBus) *pager[P] {
	p := &pager[P]{
		screen:     screen,
		controller: c,
		tween:      animation.New(c.ID(), opts),
		bus:        bus,
	}
	p.unsubscribe = c.Subscribe(p.observe)
	return p
}

func (p *pager[P]) observe(s transition.State[P]) {
	if p.bus == nil {
		return
	}
	if !s.InFlight {
		p.bus.Publish(eventbus.TransitionSettledEvent{Screen: p.screen.String(), Key: s.Key})
		return
	}
	p.bus.Publish(eventbus.NavigationAcceptedEvent{
		Screen:    p.screen.String(),
		Request:   string(p.request),
		FromKey:   p.controller.Domain().Key(s.Previous),
		ToKey:     s.Key,
		Direction: s.Direction.String(),
	})
}

func (p *pager[P]) advance() tea.Cmd {
	return p.navigate(types.RequestAdvance, p.controller.Advance, domain.DropBoundary)
}

func (p *pager[P]) retreat() tea.Cmd {
	return p.navigate(types.RequestRetreat, p.controller.Retreat, domain.DropBoundary)
}

func (p *pager[P]) jump(req types.Request, target P) tea.Cmd {
	reason := domain.DropInvalid
	if p.controller.Domain().Compare(target, p.state().Position) == 0 {
		reason = domain.DropUnchanged
	}
	return p.navigate(req, func() bool { return p.controller.JumpTo(target) }, reason)
}

// navigate runs one request and starts the animation if it was accepted
func (p *pager[P]) navigate(req types.Request, fn func() bool, reason domain.DropReason) tea.Cmd {
	before := p.state()
	p.request = req
	if fn() {
		return p.tween.Start()
	}

	if before.InFlight {
		reason = domain.DropInFlight
	}
	if p.bus != nil {
		p.bus.Publish(eventbus.NavigationDroppedEvent{
			Screen:  p.screen.String(),
			Request: string(req),
			Key:     before.Key,
			Reason:  reason,
		})
	}
	return nil
}

// owns reports whether msg belongs to this pager's tween
func (p *pager[P]) owns(msg animation.FrameMsg) bool {
	return msg.ID == p.tween.ID()
}

// frame advances the animation and settles the controller when it ends
func (p *pager[P]) frame(msg animation.FrameMsg) tea.Cmd {
	cmd, settled := p.tween.Update(msg)
	if settled {
		p.controller.OnTransitionSettled()
	}
	return cmd
}

func (p *pager[P]) state() transition.State[P] {
	return p.controller.Snapshot()
}

func (p *pager[P]) progress() float64 {
	return p.tween.Progress()
}

func (p *pager[P]) close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
