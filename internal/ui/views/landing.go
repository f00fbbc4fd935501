package views

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"folio/internal/ui/input/types"
)

// MenuItem is one entry of the landing page
type MenuItem struct {
	Screen      types.Screen
	Description string
}

// Menu lists the pages reachable from the landing screen
var Menu = []MenuItem{
	{Screen: types.ScreenCarousel, Description: "Browse the slides with ← and →"},
	{Screen: types.ScreenCalendar, Description: "Page through months"},
}

// LandingRenderer renders the static navigation page
type LandingRenderer struct {
	styles *Styles
}

// NewLandingRenderer creates a new landing renderer
func NewLandingRenderer(styles *Styles) *LandingRenderer {
	return &LandingRenderer{styles: styles}
}

// Render draws the menu with the cursor at index
func (r *LandingRenderer) Render(index int) Frame {
	frame := Frame{Lines: []string{
		r.styles.Title.Render("folio"),
		r.styles.Dim.Render("Pages"),
		"",
	}}

	for i, item := range Menu {
		cursor, style := "  ", r.styles.MenuItem
		if i == index {
			cursor, style = r.styles.MenuCursor.Render("› "), r.styles.MenuCursor
		}
		line := fmt.Sprintf("%s%d  %s", cursor, i+1, style.Render(fmt.Sprintf("%-10s", item.Screen.Title())))
		line += r.styles.MenuDesc.Render(item.Description)

		frame = frame.
			AppendLines(line).
			WithZone(types.Zone{
				X: 0, Y: frame.Height(), Width: ansi.StringWidth(line), Height: 1,
				Action: types.OpenScreenAction{Screen: item.Screen},
			})
	}
	return frame
}
