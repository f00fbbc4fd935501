package transition

import (
	"github.com/google/uuid"
)

// Observer is notified after every effective state change
type Observer[P any] func(State[P])

// Controller owns one transition state and its observers.
// It is not safe for concurrent use; all calls are expected from the UI loop.
type Controller[P any] struct {
	id        string
	domain    Domain[P]
	state     State[P]
	observers map[int]Observer[P]
	nextObsID int
}

// NewController creates a controller positioned at initial
func NewController[P any](d Domain[P], initial P) *Controller[P] {
	return &Controller[P]{
		id:        uuid.NewString(),
		domain:    d,
		state:     Initial(d, initial),
		observers: make(map[int]Observer[P]),
	}
}

// ID returns the unique identity of this controller instance
func (c *Controller[P]) ID() string {
	return c.id
}

// Domain returns the position domain the controller pages through
func (c *Controller[P]) Domain() Domain[P] {
	return c.domain
}

// Advance requests a move to the next position
func (c *Controller[P]) Advance() bool {
	return c.apply(Advance(c.domain, c.state))
}

// Retreat requests a move to the previous position
func (c *Controller[P]) Retreat() bool {
	return c.apply(Retreat(c.domain, c.state))
}

// JumpTo requests a move to an arbitrary position
func (c *Controller[P]) JumpTo(target P) bool {
	return c.apply(JumpTo(c.domain, c.state, target))
}

// OnTransitionSettled is called by the rendering layer when the visual
// transition has finished. Calling it while settled does nothing.
func (c *Controller[P]) OnTransitionSettled() {
	c.apply(Settle(c.state))
}

// Snapshot returns the current state
func (c *Controller[P]) Snapshot() State[P] {
	return c.state
}

// Subscribe registers an observer and returns a function that removes it
func (c *Controller[P]) Subscribe(fn Observer[P]) func() {
	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = fn

	return func() {
		delete(c.observers, id)
	}
}

func (c *Controller[P]) apply(next State[P], changed bool) bool {
	if !changed {
		return false
	}
	c.state = next

	// Notify in registration order
	for id := 0; id < c.nextObsID; id++ {
		if fn, ok := c.observers[id]; ok {
			fn(next)
		}
	}
	return true
}
