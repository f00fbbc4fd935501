package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/carousel"
	"folio/internal/transition"
	"folio/internal/ui/input/types"
)

const (
	gutterWidth = 3
	thumbHeight = 2
)

// CarouselState contains what the carousel renderer needs
type CarouselState struct {
	Transition transition.State[int]
	Progress   float64
	Slides     []carousel.Slide
}

// CarouselRenderer renders the slide strip, its chevrons and the thumbnails
type CarouselRenderer struct {
	styles *Styles
}

// NewCarouselRenderer creates a new carousel renderer
func NewCarouselRenderer(styles *Styles) *CarouselRenderer {
	return &CarouselRenderer{styles: styles}
}

// SlideSize returns the slide frame size for the available space
func SlideSize(width, height int) (w, h int) {
	w = max(20, min(width-2*gutterWidth-4, 72))
	// Terminal cells are about twice as tall as wide, so 3:2 becomes w/3 rows
	h = max(5, min(w/3, height-12))
	return w, h
}

// Render draws the carousel for a screen of width x height cells
func (r *CarouselRenderer) Render(state CarouselState, width, height int) Frame {
	slides := state.Slides
	if len(slides) == 0 {
		return NewFrame(r.styles.Dim.Render("No slides configured"))
	}

	s := state.Transition
	w, h := SlideSize(width, height)

	panels := make([][]string, len(slides))
	for i, slide := range slides {
		panels[i] = r.slide(slide, w, h)
	}
	from := s.Position
	progress := 0.0
	if s.InFlight {
		from, progress = s.Previous, state.Progress
	}
	window := Compose(panels, from, s.Position, progress, w)

	left, right := strings.Repeat(" ", gutterWidth), strings.Repeat(" ", gutterWidth)
	var zones []types.Zone
	mid := h / 2
	if carousel.HasPrev(s.Position) {
		zones = append(zones, types.Zone{X: 0, Y: 0, Width: gutterWidth, Height: h, Action: types.NavigateAction{Request: types.RequestRetreat}})
	}
	if carousel.HasNext(s.Position, len(slides)) {
		zones = append(zones, types.Zone{X: gutterWidth + w, Y: 0, Width: gutterWidth, Height: h, Action: types.NavigateAction{Request: types.RequestAdvance}})
	}

	lines := make([]string, len(window))
	for i, line := range window {
		l, rt := left, right
		if i == mid && carousel.HasPrev(s.Position) {
			l = " " + r.styles.Chevron.Render("‹") + " "
		}
		if i == mid && carousel.HasNext(s.Position, len(slides)) {
			rt = " " + r.styles.Chevron.Render("›") + " "
		}
		lines[i] = l + line + rt
	}

	frame := Frame{Lines: lines, Zones: zones}
	total := w + 2*gutterWidth

	current := slides[s.Position]
	counter := fmt.Sprintf("%d / %d · %s", s.Position+1, len(slides), current.Title)
	frame = frame.AppendLines("", center(r.styles.Counter.Render(counter), total), "")
	frame = frame.Append(r.thumbnails(state, total))
	return frame
}

func (r *CarouselRenderer) slide(slide carousel.Slide, w, h int) []string {
	bg := SlideBackground(slide.Color)
	content := map[int]string{
		h/2 - 1: r.styles.SlideText.Inherit(bg).Render(slide.Title),
		h / 2:   r.styles.SlideMeta.Inherit(bg).Render(slide.Caption),
		h - 1:   r.styles.SlideMeta.Inherit(bg).Faint(true).Render(slide.Path),
	}

	lines := make([]string, h)
	for i := range lines {
		text, ok := content[i]
		if !ok {
			lines[i] = bg.Render(strings.Repeat(" ", w))
			continue
		}
		lines[i] = r.fill(text, w, bg)
	}
	return lines
}

// fill centers styled text on a full-width background line
func (r *CarouselRenderer) fill(text string, w int, bg lipgloss.Style) string {
	text = ansi.Truncate(text, w, "")
	tw := ansi.StringWidth(text)
	lead := (w - tw) / 2
	return bg.Render(strings.Repeat(" ", lead)) + text + bg.Render(strings.Repeat(" ", w-tw-lead))
}

// thumbnails draws the strip with the active thumbnail centered. While a
// transition runs each thumbnail interpolates between its old and new layout.
func (r *CarouselRenderer) thumbnails(state CarouselState, width int) Frame {
	s := state.Transition
	count := len(state.Slides)
	strip := carousel.Strip{Unit: max(6, width/6)}

	current := strip.Layout(s.Position, count)
	previous := current
	progress := 0.0
	if s.InFlight {
		previous = strip.Layout(s.Previous, count)
		progress = state.Progress
	}
	base := (width - strip.Unit) / 2

	owner := make([]int, width)
	for i := range owner {
		owner[i] = -1
	}

	var zones []types.Zone
	for i := range current {
		x := base + lerp(current[i].X, previous[i].X, progress)
		tw := max(1, lerp(current[i].Width, previous[i].Width, progress))
		lo, hi := max(0, x), min(width, x+tw)
		if lo >= hi {
			continue
		}
		for c := lo; c < hi; c++ {
			owner[c] = i
		}
		zones = append(zones, types.Zone{
			X: lo, Y: 0, Width: hi - lo, Height: thumbHeight,
			Action: types.NavigateAction{Request: types.RequestJump, Target: i},
		})
	}

	var line strings.Builder
	for c := 0; c < width; c++ {
		i := owner[c]
		if i < 0 {
			line.WriteByte(' ')
			continue
		}
		active := i == s.Position
		glyph := "▒"
		if active {
			glyph = "█"
		}
		line.WriteString(ThumbStyle(state.Slides[i].Color, active).Render(glyph))
	}

	lines := make([]string, thumbHeight)
	for i := range lines {
		lines[i] = line.String()
	}
	return Frame{Lines: lines, Zones: zones}
}

func lerp(to, from int, progress float64) int {
	return int(math.Round(float64(to) + float64(from-to)*progress))
}
