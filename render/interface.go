package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// SystemRenderer is implemented by each drawing layer
type SystemRenderer interface {
	Render(ctx RenderContext, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Rand is the subset of *rand.Rand used for visual noise
type Rand interface {
	Float64() float64
	Intn(n int) int
}
