package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y), clipped to the canvas; returns the column after the text
func drawText(c Canvas, x, y int, s string, style tcell.Style) int {
	w, h := c.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			c.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes s centered between left and left+width
func drawCentered(c Canvas, left, width, y int, s string, style tcell.Style) {
	sw := runewidth.StringWidth(s)
	drawText(c, left+max(0, (width-sw)/2), y, s, style)
}

// fillRow paints a run of spaces so overlay text reads on any background
func fillRow(c Canvas, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		c.SetContent(x+i, y, ' ', nil, style)
	}
}

// wrap splits s into lines no wider than width, breaking on spaces
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// truncate cuts s to width columns
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
