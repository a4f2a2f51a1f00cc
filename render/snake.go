package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
)

// Snake glyphs
const (
	GlyphHead     = '◉'
	GlyphHeadDead = '◎'
	GlyphBody     = '■'
	GlyphFaded    = '░'
)

// snakeRenderer draws the body tail first so the head wins on overlap
// Memory fades the tail proportionally to its intensity
type snakeRenderer struct{}

// FadedSegments returns how many tail segments Memory hides, never the head
func FadedSegments(bodyLen int, intensity float64) int {
	if bodyLen <= 1 || intensity <= 0 {
		return 0
	}
	return min(bodyLen-1, int(float64(bodyLen-1)*intensity))
}

func (snakeRenderer) Render(ctx RenderContext, c Canvas) {
	body := ctx.Snap.Body
	if len(body) == 0 {
		return
	}
	bg := tcell.StyleDefault.Background(RgbBackground)
	dead := ctx.Snap.Label == snake.LabelDead
	faded := FadedSegments(len(body), ctx.Snap.Intensity(poison.Memory))
	fadeFrom := len(body) - faded

	for i := len(body) - 1; i >= 1; i-- {
		glyph := GlyphBody
		color := ctx.Theme.Body
		if ctx.Theme.Rainbow {
			color = RainbowColor(i, ctx.Frame)
		}
		if i >= fadeFrom {
			glyph = GlyphFaded
			color = ctx.Theme.Faded
		}
		if dead {
			color = Dim(color, 0.5)
		}
		sx, sy := ctx.CellToScreen(body[i])
		c.SetContent(sx, sy, glyph, nil, bg.Foreground(color))
	}

	sx, sy := ctx.CellToScreen(body[0])
	c.SetContent(sx, sy, headGlyph(dead), nil, bg.Foreground(headColor(ctx)).Bold(true))
}

func headGlyph(dead bool) rune {
	if dead {
		return GlyphHeadDead
	}
	return GlyphHead
}

func headColor(ctx RenderContext) tcell.Color {
	switch ctx.Snap.Label {
	case snake.LabelDead:
		return RgbDeath
	case snake.LabelEvolving, snake.LabelEnlightened:
		return RgbEvolving
	}
	// Impulsive head stutters between its color and the theme's
	if ctx.Snap.HasPoison(poison.Impulsive) && ctx.Frame%2 == 1 {
		return RgbImpulsive
	}
	return ctx.Theme.Head
}
