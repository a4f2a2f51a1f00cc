package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/core"
)

// Board glyphs
const (
	GlyphCornerTL   = '┌'
	GlyphCornerTR   = '┐'
	GlyphCornerBL   = '└'
	GlyphCornerBR   = '┘'
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphObstacle   = '▓'
)

// backgroundRenderer paints the board area and the style's grid pattern
type backgroundRenderer struct{}

func (backgroundRenderer) Render(ctx RenderContext, c Canvas) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	gridStyle := bg.Foreground(ctx.Theme.Grid)

	for y := 0; y < ctx.Snap.Height; y++ {
		for x := 0; x < ctx.Snap.Width; x++ {
			sx, sy := ctx.CellToScreen(core.Point{X: x, Y: y})
			r := ' '
			if ctx.Theme.GridGlyph != 0 {
				r = ctx.Theme.GridGlyph
			}
			c.SetContent(sx, sy, r, nil, gridStyle)
			c.SetContent(sx+1, sy, ' ', nil, bg)
		}
	}
}

// boardRenderer draws the border and obstacles
type boardRenderer struct{}

func (boardRenderer) Render(ctx RenderContext, c Canvas) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	border := bg.Foreground(ctx.Theme.Border)

	left, top := ctx.OriginX, ctx.OriginY
	right, bottom := left+ctx.BoardWidth()-1, top+ctx.BoardHeight()-1

	for x := left + 1; x < right; x++ {
		c.SetContent(x, top, GlyphHorizontal, nil, border)
		c.SetContent(x, bottom, GlyphHorizontal, nil, border)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetContent(left, y, GlyphVertical, nil, border)
		c.SetContent(right, y, GlyphVertical, nil, border)
	}
	c.SetContent(left, top, GlyphCornerTL, nil, border)
	c.SetContent(right, top, GlyphCornerTR, nil, border)
	c.SetContent(left, bottom, GlyphCornerBL, nil, border)
	c.SetContent(right, bottom, GlyphCornerBR, nil, border)

	obstacle := bg.Foreground(ctx.Theme.Obstacle)
	for _, o := range ctx.Snap.Obstacles {
		sx, sy := ctx.CellToScreen(o)
		c.SetContent(sx, sy, GlyphObstacle, nil, obstacle)
		c.SetContent(sx+1, sy, GlyphObstacle, nil, obstacle)
	}
}
