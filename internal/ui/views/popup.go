package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers popup content in a width x height area
func (pr *PopupRenderer) RenderPopup(content string, width, height int) Frame {
	styled := pr.styles.Popup.Render(content)

	if width <= 0 || height <= 0 {
		return NewFrame(styled)
	}
	return NewFrame(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled))
}
