package render

import (
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/status"
)

// statusRenderer draws the metric registry on the row after the HUD
type statusRenderer struct {
	registry *status.Registry
	visible  atomic.Bool
}

func (r *statusRenderer) IsVisible() bool {
	return r.registry != nil && r.visible.Load()
}

func (r *statusRenderer) Render(ctx RenderContext, c Canvas) {
	y := ctx.HUDRow() + parameter.StatusLines
	if y >= ctx.ScreenHeight {
		y = ctx.ScreenHeight - 1
	}
	line := strings.Join(r.registry.Lines(), "  ")
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDimText)
	drawText(c, 0, y, truncate(line, ctx.ScreenWidth), style)
}
