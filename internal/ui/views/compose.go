package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose lays panels side by side, each exactly width cells wide, and
// returns the width-cell window showing the transition from panel `from` to
// panel `to`. progress is the fraction of the distance still to travel:
// 1 shows `from`, 0 shows `to`.
func Compose(panels [][]string, from, to int, progress float64, width int) []string {
	if len(panels) == 0 || width <= 0 {
		return nil
	}

	height := 0
	for _, p := range panels {
		height = max(height, len(p))
	}

	pos := float64(to) + (float64(from)-float64(to))*progress
	x := int(math.Round(pos * float64(width)))
	x = max(0, min(x, (len(panels)-1)*width))

	out := make([]string, height)
	var row strings.Builder
	for i := 0; i < height; i++ {
		row.Reset()
		for _, p := range panels {
			line := ""
			if i < len(p) {
				line = p[i]
			}
			row.WriteString(fit(line, width))
		}
		out[i] = ansi.Cut(row.String(), x, x+width)
	}
	return out
}

// Pair orders the exiting and entering panels for a two-panel transition.
// Moving forward, the entering panel sits at +100%; moving backward at -100%.
func Pair(exiting, entering []string, sign int) (panels [][]string, from, to int) {
	if sign < 0 {
		return [][]string{entering, exiting}, 1, 0
	}
	return [][]string{exiting, entering}, 0, 1
}

// cut returns the cells [left, right) of line, padded to that width
func cut(line string, left, right int) string {
	return fit(ansi.Cut(line, left, right), right-left)
}
