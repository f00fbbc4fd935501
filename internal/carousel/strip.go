package carousel

import "math"

// Thumbnail strip proportions. The active thumbnail has the full aspect ratio
// and a margin on both sides; inactive ones collapse to a narrow sliver.
const (
	FullAspect      = 3.0 / 2.0
	CollapsedAspect = 1.0 / 3.0
	GapPercent      = 4.0
	MarginPercent   = 12.0
)

// Thumb is a laid out thumbnail in terminal columns
type Thumb struct {
	Index  int
	X      int // left edge relative to the active thumbnail's left edge
	Width  int
	Active bool
}

// Strip converts strip proportions to terminal columns
type Strip struct {
	Unit int // width of the active thumbnail in columns
}

// CollapsedWidth is the width of an inactive thumbnail
func (s Strip) CollapsedWidth() int {
	return max(1, int(math.Round(float64(s.Unit)*CollapsedAspect/FullAspect)))
}

// Gap is the spacing between thumbnails
func (s Strip) Gap() int {
	return max(1, int(math.Round(float64(s.Unit)*GapPercent/100)))
}

// Margin is the extra spacing on each side of the active thumbnail
func (s Strip) Margin() int {
	return int(math.Round(float64(s.Unit) * MarginPercent / 100))
}

// Layout positions count thumbnails with active at X == 0
func (s Strip) Layout(active, count int) []Thumb {
	thumbs := make([]Thumb, count)
	collapsed, gap, margin := s.CollapsedWidth(), s.Gap(), s.Margin()

	x := 0
	for i := 0; i < count; i++ {
		t := Thumb{Index: i, Width: collapsed}
		if i == active {
			x += margin
			t.Width = s.Unit
			t.Active = true
		}
		t.X = x
		x += t.Width + gap
		if i == active {
			x += margin
		}
		thumbs[i] = t
	}

	// Shift so the active thumbnail starts at 0
	if active >= 0 && active < count {
		shift := thumbs[active].X
		for i := range thumbs {
			thumbs[i].X -= shift
		}
	}
	return thumbs
}
