// Package render draws engine snapshots onto a tcell-compatible canvas as a
// stack of prioritized layers.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/status"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Renderer coordinates the render pipeline
// Draw is called from a single goroutine; ToggleStatus may be called from any
type Renderer struct {
	canvas        Canvas
	renderers     []rendererEntry
	regCount      int
	frame         int64
	initialLength int
	status        *statusRenderer
}

// NewRenderer creates a renderer with the default layers registered
// rng drives Perception flicker; reg may be nil to disable the status line
func NewRenderer(c Canvas, rng Rand, initialLength int, reg *status.Registry) *Renderer {
	r := &Renderer{
		canvas:        c,
		renderers:     make([]rendererEntry, 0, 8),
		initialLength: initialLength,
		status:        &statusRenderer{registry: reg},
	}
	r.Register(backgroundRenderer{}, PriorityBackground)
	r.Register(boardRenderer{}, PriorityBoard)
	r.Register(&foodRenderer{rng: rng}, PriorityFood)
	r.Register(snakeRenderer{}, PrioritySnake)
	r.Register(hudRenderer{}, PriorityUI)
	r.Register(overlayRenderer{}, PriorityOverlay)
	r.Register(r.status, PriorityDebug)
	return r
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (r *Renderer) Register(sr SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: sr,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.renderers)
	for i, e := range r.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	r.renderers = append(r.renderers, rendererEntry{})
	copy(r.renderers[pos+1:], r.renderers[pos:])
	r.renderers[pos] = entry
}

// ToggleStatus flips the metric line and returns its new visibility
func (r *Renderer) ToggleStatus() bool {
	v := !r.status.visible.Load()
	r.status.visible.Store(v)
	return v
}

// Context builds the frame context for a snapshot on the current canvas size
func (r *Renderer) Context(snap engine.Snapshot) RenderContext {
	w, h := r.canvas.Size()
	ctx := RenderContext{
		Snap:          snap,
		Theme:         ThemeFor(snap.Style),
		Frame:         r.frame,
		ScreenWidth:   w,
		ScreenHeight:  h,
		InitialLength: r.initialLength,
	}
	return ctx
}

// Draw executes the render pipeline: clear, render all, show
func (r *Renderer) Draw(snap engine.Snapshot) {
	ctx := r.Context(snap)
	r.frame++

	r.canvas.Clear()
	if !ctx.Fits() {
		msg := fmt.Sprintf("terminal too small: need %dx%d", ctx.BoardWidth(), ctx.BoardHeight()+parameter.StatusLines)
		drawText(r.canvas, 0, 0, truncate(msg, ctx.ScreenWidth), tcell.StyleDefault.Foreground(RgbDeath))
		r.canvas.Show()
		return
	}

	for _, entry := range r.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, r.canvas)
	}

	r.canvas.Show()
}
