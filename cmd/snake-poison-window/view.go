package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/render"
	"github.com/lixenwraith/snake-poison/snake"
	"github.com/lixenwraith/snake-poison/status"
	"github.com/lixenwraith/snake-poison/world"
)

const (
	fontSize      = 18
	smallFontSize = 14
	lineHeight    = 22
)

// view draws snapshots with raylib primitives, sharing palettes with the terminal renderer
type view struct {
	gridW, gridH  int
	initialLength int
	rng           render.Rand
	status        *status.Registry
	frame         int64
	showStatus    bool
}

func newView(gridW, gridH, initialLength int, rng render.Rand, reg *status.Registry) *view {
	return &view{gridW: gridW, gridH: gridH, initialLength: initialLength, rng: rng, status: reg}
}

func (v *view) boardWidth() int32  { return int32(v.gridW * parameter.WindowCellSize) }
func (v *view) boardHeight() int32 { return int32(v.gridH * parameter.WindowCellSize) }

func (v *view) windowWidth() int32 {
	return v.boardWidth() + parameter.WindowPanelWidth + 3*parameter.WindowPadding
}

func (v *view) windowHeight() int32 {
	return max(v.boardHeight()+2*parameter.WindowPadding, 400)
}

// toRL converts a palette color; tcell keeps truecolor components exact
func toRL(c tcell.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(uint8(r), uint8(g), uint8(b), 255)
}

func (v *view) cellRect(p core.Point) (int32, int32) {
	return parameter.WindowPadding + int32(p.X*parameter.WindowCellSize),
		parameter.WindowPadding + int32(p.Y*parameter.WindowCellSize)
}

func (v *view) draw(s engine.Snapshot) {
	v.frame++
	theme := render.ThemeFor(s.Style)

	rl.BeginDrawing()
	rl.ClearBackground(toRL(render.RgbBackground))

	v.drawBoard(s, theme)
	v.drawFood(s, theme)
	v.drawSnake(s, theme)
	v.drawPanel(s)
	v.drawOverlay(s)

	rl.EndDrawing()
}

func (v *view) drawBoard(s engine.Snapshot, theme render.Theme) {
	const cell = parameter.WindowCellSize
	rl.DrawRectangleLines(parameter.WindowPadding-1, parameter.WindowPadding-1,
		v.boardWidth()+2, v.boardHeight()+2, toRL(theme.Border))

	if theme.GridGlyph != 0 {
		grid := toRL(theme.Grid)
		for x := 1; x < s.Width; x++ {
			px := parameter.WindowPadding + int32(x*cell)
			rl.DrawLine(px, parameter.WindowPadding, px, parameter.WindowPadding+v.boardHeight(), grid)
		}
		for y := 1; y < s.Height; y++ {
			py := parameter.WindowPadding + int32(y*cell)
			rl.DrawLine(parameter.WindowPadding, py, parameter.WindowPadding+v.boardWidth(), py, grid)
		}
	}

	obstacle := toRL(theme.Obstacle)
	for _, p := range s.Obstacles {
		x, y := v.cellRect(p)
		rl.DrawRectangle(x, y, cell, cell, obstacle)
	}
}

func (v *view) drawFood(s engine.Snapshot, theme render.Theme) {
	const half = parameter.WindowCellSize / 2

	flicker := 0.0
	if s.Phase == engine.PhaseRunning {
		flicker = parameter.PerceptionFlickerChance * s.Intensity(poison.Perception)
	}
	trueSight := slices.Contains(s.Abilities, evolution.TrueSight)

	for _, f := range s.Foods {
		if flicker > 0 && v.rng.Float64() < flicker {
			continue
		}
		color := foodColor(theme, f)
		if trueSight && f.Poisoned {
			color = render.RgbReveal
		}
		x, y := v.cellRect(f.Position)
		rl.DrawCircle(x+half, y+half, float32(half-3), toRL(color))
	}
}

func foodColor(theme render.Theme, f world.Food) tcell.Color {
	switch f.Type {
	case world.Suspicious:
		return theme.FoodSuspicious
	case world.Valuable:
		return theme.FoodValuable
	default:
		return theme.FoodNormal
	}
}

func (v *view) drawSnake(s engine.Snapshot, theme render.Theme) {
	const cell = parameter.WindowCellSize
	body := s.Body
	if len(body) == 0 {
		return
	}

	dead := s.Label == snake.LabelDead
	faded := render.FadedSegments(len(body), s.Intensity(poison.Memory))
	fadeFrom := len(body) - faded
	// Perception shakes body segments off their cells while running
	jitter := s.Phase == engine.PhaseRunning && s.HasPoison(poison.Perception)

	for i := len(body) - 1; i >= 0; i-- {
		color := theme.Body
		switch {
		case i == 0:
			color = headColor(s, theme, v.frame)
		case i >= fadeFrom:
			color = theme.Faded
		case theme.Rainbow:
			color = render.RainbowColor(i, v.frame)
		}
		if dead && i > 0 {
			color = render.Dim(color, 0.5)
		}

		x, y := v.cellRect(body[i])
		if jitter && i > 0 && v.rng.Float64() < s.Intensity(poison.Perception) {
			j := parameter.PerceptionJitter
			x += int32((v.rng.Intn(2*j+1) - j) * cell / 4)
			y += int32((v.rng.Intn(2*j+1) - j) * cell / 4)
		}
		rl.DrawRectangle(x+1, y+1, cell-2, cell-2, toRL(color))
	}
}

func headColor(s engine.Snapshot, theme render.Theme, frame int64) tcell.Color {
	switch s.Label {
	case snake.LabelDead:
		return render.RgbDeath
	case snake.LabelEvolving, snake.LabelEnlightened:
		return render.RgbEvolving
	}
	if s.HasPoison(poison.Impulsive) && frame%8 < 4 {
		return render.RgbImpulsive
	}
	return theme.Head
}

func (v *view) drawPanel(s engine.Snapshot) {
	x := v.boardWidth() + 2*parameter.WindowPadding
	y := int32(parameter.WindowPadding)
	text := toRL(render.RgbStatusText)
	dim := toRL(render.RgbDimText)

	line := func(str string, size int32, color rl.Color) {
		rl.DrawText(str, x, y, size, color)
		y += lineHeight
	}

	line(s.Label.String(), fontSize, toRL(render.RgbEvolving))
	line(fmt.Sprintf("Length %d  Score %d", len(s.Body), s.Score(v.initialLength)), fontSize, text)
	line(fmt.Sprintf("Food %d  Moves %d", s.FoodEaten, s.TotalMoves), smallFontSize, dim)
	line(fmt.Sprintf("Life %.1fs  Tick %dms", s.LifeSpan.Seconds(), s.Interval.Milliseconds()), smallFontSize, dim)
	y += lineHeight / 2

	for _, p := range s.Poisons {
		line(render.PoisonLabel(p), fontSize, toRL(render.PoisonColor(p.Kind)))
	}
	if len(s.Abilities) > 0 {
		names := make([]string, len(s.Abilities))
		for i, a := range s.Abilities {
			names[i] = a.String()
		}
		line(strings.Join(names, " "), smallFontSize, toRL(render.RgbEvolving))
	}
	y += lineHeight / 2

	line(fmt.Sprintf("%s world", s.Style), smallFontSize, dim)
	line(fmt.Sprintf("difficulty %.2f  risk %.2f", s.Difficulty, s.RiskPreference), smallFontSize, dim)
	if s.Message != "" {
		for _, l := range wrapText(s.Message, smallFontSize, parameter.WindowPanelWidth) {
			line(l, smallFontSize, toRL(render.RgbMessage))
		}
	}

	if v.showStatus && v.status != nil {
		y += lineHeight / 2
		for _, l := range v.status.Lines() {
			line(l, smallFontSize-2, dim)
		}
	}
}

func (v *view) drawOverlay(s engine.Snapshot) {
	var lines []string
	accent := toRL(render.RgbStatusText)

	switch s.Phase {
	case engine.PhaseReady:
		accent = toRL(render.RgbEvolving)
		lines = []string{"SNAKE POISON", "Enter to start", "arrows, wasd or hjkl steer", "space pauses, m mutes, q quits"}
	case engine.PhasePaused:
		accent = toRL(render.RgbMessage)
		lines = []string{"PAUSED", "space to resume"}
	case engine.PhaseOver:
		accent = toRL(render.RgbDeath)
		lines = []string{"GAME OVER"}
		if s.DeathCause != "" {
			lines = append(lines, "It "+s.DeathCause+".")
		}
		lines = append(lines, wrapText(s.Story, smallFontSize, v.boardWidth()-40)...)
		lines = append(lines, fmt.Sprintf("Score %d  r to restart, q to quit", s.Score(v.initialLength)))
	default:
		return
	}

	h := int32(len(lines)*lineHeight + 20)
	top := parameter.WindowPadding + max(0, (v.boardHeight()-h)/2)
	rl.DrawRectangle(parameter.WindowPadding, top, v.boardWidth(), h, rl.Fade(toRL(render.RgbBackground), 0.85))

	y := top + 10
	for i, l := range lines {
		size := int32(smallFontSize)
		color := toRL(render.RgbStatusText)
		if i == 0 {
			size, color = fontSize+6, accent
		}
		w := rl.MeasureText(l, size)
		rl.DrawText(l, parameter.WindowPadding+(v.boardWidth()-w)/2, y, size, color)
		y += lineHeight
	}
}

// wrapText breaks s into lines no wider than width pixels at size
func wrapText(s string, size, width int32) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if cur != "" && rl.MeasureText(next, size) > width {
			lines = append(lines, cur)
			next = w
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
