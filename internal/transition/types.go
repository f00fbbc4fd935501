package transition

// Direction records which way the most recent accepted navigation moved
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Sign returns +1 for Forward and -1 for Backward
func (d Direction) Sign() int {
	if d == Backward {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Domain describes an ordered space of positions.
// Next and Prev report false when the move would leave a bounded domain.
type Domain[P any] interface {
	Next(p P) (P, bool)
	Prev(p P) (P, bool)
	Compare(a, b P) int
	Key(p P) string
}

// Validator is implemented by bounded domains that can reject a jump target
type Validator[P any] interface {
	Valid(p P) bool
}

// State is the render-ready snapshot of a controller
type State[P any] struct {
	Position  P
	Previous  P // position before the last accepted request
	Direction Direction
	InFlight  bool
	Key       string // stable key of Position
	Seq       uint64 // number of accepted requests
}
