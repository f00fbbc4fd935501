package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"folio/internal/ui/input/types"
)

// Frame is rendered content plus the clickable zones inside it
type Frame struct {
	Lines []string
	Zones []types.Zone
}

// NewFrame splits content into a frame without zones
func NewFrame(content string) Frame {
	if content == "" {
		return Frame{}
	}
	return Frame{Lines: strings.Split(content, "\n")}
}

// String joins the frame's lines
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Width is the widest line in cells
func (f Frame) Width() int {
	w := 0
	for _, l := range f.Lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// Height is the number of lines
func (f Frame) Height() int {
	return len(f.Lines)
}

// Append stacks other below f
func (f Frame) Append(other Frame) Frame {
	dy := len(f.Lines)
	out := Frame{
		Lines: append(append([]string{}, f.Lines...), other.Lines...),
		Zones: append([]types.Zone{}, f.Zones...),
	}
	for _, z := range other.Zones {
		out.Zones = append(out.Zones, z.Offset(0, dy))
	}
	return out
}

// AppendLines stacks plain lines below f
func (f Frame) AppendLines(lines ...string) Frame {
	return f.Append(Frame{Lines: lines})
}

// Indent shifts the frame right by dx cells
func (f Frame) Indent(dx int) Frame {
	if dx <= 0 {
		return f
	}
	prefix := strings.Repeat(" ", dx)
	out := Frame{Lines: make([]string, len(f.Lines))}
	for i, l := range f.Lines {
		out.Lines[i] = prefix + l
	}
	for _, z := range f.Zones {
		out.Zones = append(out.Zones, z.Offset(dx, 0))
	}
	return out
}

// Center indents the frame so it is centered in width
func (f Frame) Center(width int) Frame {
	return f.Indent((width - f.Width()) / 2)
}

// WithZone adds a zone in frame coordinates
func (f Frame) WithZone(z types.Zone) Frame {
	f.Zones = append(append([]types.Zone{}, f.Zones...), z)
	return f
}

// fit truncates or pads line to exactly width cells
func fit(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// center pads plain text on both sides to width cells
func center(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return fit(text, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}
