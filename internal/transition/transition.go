// Package transition implements the paginated transition controller shared by
// the calendar and carousel screens.
//
// A controller tracks the current position, the direction of the last move and
// a single in-flight flag. While a transition is in flight every navigation
// request is dropped. The rendering layer clears the flag by calling
// OnTransitionSettled once its animation finishes.
package transition

// Initial returns the state a controller starts with
func Initial[P any](d Domain[P], p P) State[P] {
	return State[P]{
		Position:  p,
		Previous:  p,
		Direction: Forward,
		Key:       d.Key(p),
	}
}

// Advance moves to the successor of the current position.
// It reports false when the request was dropped.
func Advance[P any](d Domain[P], s State[P]) (State[P], bool) {
	if s.InFlight {
		return s, false
	}
	next, ok := d.Next(s.Position)
	if !ok {
		return s, false
	}
	return accept(d, s, next, Forward), true
}

// Retreat moves to the predecessor of the current position
func Retreat[P any](d Domain[P], s State[P]) (State[P], bool) {
	if s.InFlight {
		return s, false
	}
	prev, ok := d.Prev(s.Position)
	if !ok {
		return s, false
	}
	return accept(d, s, prev, Backward), true
}

// JumpTo moves directly to target. Jumps obey the same exclusivity as
// Advance and Retreat: they are dropped while a transition is in flight.
func JumpTo[P any](d Domain[P], s State[P], target P) (State[P], bool) {
	if s.InFlight {
		return s, false
	}
	if v, ok := d.(Validator[P]); ok && !v.Valid(target) {
		return s, false
	}
	cmp := d.Compare(target, s.Position)
	if cmp == 0 {
		return s, false
	}
	dir := Forward
	if cmp < 0 {
		dir = Backward
	}
	return accept(d, s, target, dir), true
}

// Settle clears the in-flight flag. Position is never touched.
func Settle[P any](s State[P]) (State[P], bool) {
	if !s.InFlight {
		return s, false
	}
	s.InFlight = false
	return s, true
}

func accept[P any](d Domain[P], s State[P], to P, dir Direction) State[P] {
	return State[P]{
		Position:  to,
		Previous:  s.Position,
		Direction: dir,
		InFlight:  true,
		Key:       d.Key(to),
		Seq:       s.Seq + 1,
	}
}
