package domain

import (
	"fmt"

	"folio/internal/transition"
)

// Deck is the bounded domain of slide indexes [0, Size-1].
// Moves past either end are refused rather than wrapped.
type Deck struct {
	Size int
}

// Valid reports whether i is a slide index
func (d Deck) Valid(i int) bool {
	return i >= 0 && i < d.Size
}

func (d Deck) Next(i int) (int, bool) {
	if !d.Valid(i + 1) {
		return i, false
	}
	return i + 1, true
}

func (d Deck) Prev(i int) (int, bool) {
	if !d.Valid(i - 1) {
		return i, false
	}
	return i - 1, true
}

func (d Deck) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Key returns the stable key of a slide index
func (d Deck) Key(i int) string {
	return fmt.Sprintf("slide-%d", i)
}

var (
	_ transition.Domain[int]    = Deck{}
	_ transition.Validator[int] = Deck{}
)
