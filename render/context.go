package render

import (
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap  engine.Snapshot
	Theme Theme

	// Frame counts RenderFrame calls, used for animation phase
	Frame int64

	// Screen dimensions
	ScreenWidth  int
	ScreenHeight int

	// Top-left of the board border in screen coordinates
	OriginX int
	OriginY int

	// InitialLength is the starting body length, for score display
	InitialLength int
}

// BoardWidth is the board width in screen columns including the border
func (ctx RenderContext) BoardWidth() int {
	return ctx.Snap.Width*parameter.CellWidth + 2
}

// BoardHeight is the board height in screen rows including the border
func (ctx RenderContext) BoardHeight() int {
	return ctx.Snap.Height + 2
}

// HUDRow is the first screen row below the board
func (ctx RenderContext) HUDRow() int {
	return ctx.OriginY + ctx.BoardHeight()
}

// CellToScreen maps a grid cell to the screen column/row of its glyph
func (ctx RenderContext) CellToScreen(p core.Point) (int, int) {
	return ctx.OriginX + 1 + p.X*parameter.CellWidth, ctx.OriginY + 1 + p.Y
}

// Fits reports whether the board and HUD fit on screen
func (ctx RenderContext) Fits() bool {
	return ctx.ScreenWidth >= ctx.BoardWidth() && ctx.ScreenHeight >= ctx.BoardHeight()+parameter.StatusLines
}
