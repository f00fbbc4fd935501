// Package carousel describes the slide deck and the geometry of its thumbnail strip.
package carousel

import "fmt"

// Slide is one item of the carousel.
// Images are not decoded; Path is shown as metadata and Color fills the frame.
type Slide struct {
	Title   string `mapstructure:"title" toml:"title"`
	Caption string `mapstructure:"caption" toml:"caption"`
	Path    string `mapstructure:"path" toml:"path"`
	Color   string `mapstructure:"color" toml:"color"`
}

// defaultColors cycles through ANSI 256 colors for slides without one
var defaultColors = []string{"24", "60", "95", "131", "66", "102"}

// DefaultSlides returns the built-in deck of six city photos
func DefaultSlides() []Slide {
	slides := make([]Slide, 6)
	for i := range slides {
		slides[i] = Slide{
			Title:   fmt.Sprintf("City %d", i+1),
			Caption: "A picture taken in the city",
			Path:    fmt.Sprintf("images/%d.jpeg", i+1),
			Color:   defaultColors[i],
		}
	}
	return slides
}

// Normalize fills missing titles and colors
func Normalize(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	for i, s := range slides {
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", i+1)
		}
		if s.Color == "" {
			s.Color = defaultColors[i%len(defaultColors)]
		}
		out[i] = s
	}
	return out
}

// HasPrev reports whether a previous-slide affordance should be shown
func HasPrev(index int) bool {
	return index > 0
}

// HasNext reports whether a next-slide affordance should be shown
func HasNext(index, count int) bool {
	return index+1 < count
}
