package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
	"github.com/lixenwraith/snake-poison/status"
	"github.com/lixenwraith/snake-poison/world"
)

type fakeCell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records the last frame shown
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]fakeCell
	shows int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]fakeCell)}
}

func (f *fakeCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[[2]int{x, y}] = fakeCell{r: r, style: style}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }
func (f *fakeCanvas) Clear()           { clear(f.cells) }
func (f *fakeCanvas) Show()            { f.shows++ }

func (f *fakeCanvas) at(x, y int) rune {
	return f.cells[[2]int{x, y}].r
}

func (f *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		r := f.at(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (f *fakeCanvas) contains(s string) bool {
	for y := 0; y < f.h; y++ {
		if strings.Contains(f.row(y), s) {
			return true
		}
	}
	return false
}

type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return 0 }

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Phase:     engine.PhaseRunning,
		Width:     10,
		Height:    5,
		Interval:  150 * time.Millisecond,
		Body:      []core.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		Heading:   core.Right,
		Label:     snake.LabelNormal,
		Obstacles: []core.Point{{X: 7, Y: 1}},
		Foods: []world.Food{
			world.NewFood(core.Point{X: 5, Y: 0}, world.Normal),
			world.NewFood(core.Point{X: 6, Y: 3}, world.Suspicious),
			world.NewFood(core.Point{X: 0, Y: 4}, world.Valuable),
		},
		MaxLength: 3,
		Style:     world.Minimal,
	}
}

// 60x16 canvas: a 10x5 board is 22x7 at the origin
func drawTest(t *testing.T, snap engine.Snapshot, rng Rand) (*fakeCanvas, RenderContext) {
	t.Helper()
	c := newFakeCanvas(60, 16)
	r := NewRenderer(c, rng, 3, nil)
	ctx := r.Context(snap)
	r.Draw(snap)
	if c.shows != 1 {
		t.Fatalf("Expected one Show, got %d", c.shows)
	}
	return c, ctx
}

func TestDrawBoard(t *testing.T) {
	c, ctx := drawTest(t, testSnapshot(), fixedRand{0.99})

	if c.at(0, 0) != GlyphCornerTL || c.at(21, 6) != GlyphCornerBR {
		t.Errorf("Expected border corners, got %q %q", c.at(0, 0), c.at(21, 6))
	}

	checks := []struct {
		name string
		p    core.Point
		want rune
	}{
		{"head", core.Point{X: 3, Y: 2}, GlyphHead},
		{"body", core.Point{X: 2, Y: 2}, GlyphBody},
		{"tail", core.Point{X: 1, Y: 2}, GlyphBody},
		{"obstacle", core.Point{X: 7, Y: 1}, GlyphObstacle},
		{"normal food", core.Point{X: 5, Y: 0}, GlyphFoodNormal},
		{"suspicious food", core.Point{X: 6, Y: 3}, GlyphFoodSuspicious},
		{"valuable food", core.Point{X: 0, Y: 4}, GlyphFoodValuable},
		{"empty", core.Point{X: 8, Y: 4}, ' '},
	}
	for _, tc := range checks {
		x, y := ctx.CellToScreen(tc.p)
		if got := c.at(x, y); got != tc.want {
			t.Errorf("%s at %v: expected %q, got %q", tc.name, tc.p, tc.want, got)
		}
	}

	if !c.contains("Len 3") || !c.contains("Tick 150ms") {
		t.Errorf("Expected HUD counters, got %q", c.row(ctx.HUDRow()))
	}
	if !c.contains("Normal") {
		t.Error("Expected label in HUD")
	}
}

func TestPerceptionFlicker(t *testing.T) {
	snap := testSnapshot()
	snap.Poisons = []engine.PoisonView{{Kind: poison.Perception, Intensity: 1, Remaining: time.Second}}

	hidden, ctx := drawTest(t, snap, fixedRand{0.0})
	x, y := ctx.CellToScreen(core.Point{X: 5, Y: 0})
	if hidden.at(x, y) == GlyphFoodNormal {
		t.Error("Expected food hidden when the roll is under the flicker chance")
	}

	shown, _ := drawTest(t, snap, fixedRand{0.99})
	if shown.at(x, y) != GlyphFoodNormal {
		t.Error("Expected food visible when the roll is over the flicker chance")
	}

	// No flicker while paused
	snap.Phase = engine.PhasePaused
	paused, _ := drawTest(t, snap, fixedRand{0.0})
	if paused.at(x, y) != GlyphFoodNormal {
		t.Error("Expected food visible while paused")
	}
}

func TestMemoryFade(t *testing.T) {
	snap := testSnapshot()
	snap.Body = []core.Point{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	snap.Poisons = []engine.PoisonView{{Kind: poison.Memory, Intensity: 0.5, Remaining: 10 * time.Second}}

	c, ctx := drawTest(t, snap, fixedRand{0.99})
	want := []rune{GlyphHead, GlyphBody, GlyphBody, GlyphFaded, GlyphFaded}
	for i, p := range snap.Body {
		x, y := ctx.CellToScreen(p)
		if got := c.at(x, y); got != want[i] {
			t.Errorf("Segment %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestFadedSegments(t *testing.T) {
	tests := []struct {
		length    int
		intensity float64
		want      int
	}{
		{1, 1.0, 0},
		{5, 0, 0},
		{5, 0.5, 2},
		{5, 1.0, 4},
		{5, 3.0, 4},
	}
	for _, tt := range tests {
		if got := FadedSegments(tt.length, tt.intensity); got != tt.want {
			t.Errorf("FadedSegments(%d, %.1f): expected %d, got %d", tt.length, tt.intensity, tt.want, got)
		}
	}
}

func TestTrueSightReveal(t *testing.T) {
	snap := testSnapshot()
	snap.Foods[1] = snap.Foods[1].WithPoison(poison.MustCreate(poison.Memory))
	snap.Abilities = []evolution.Ability{evolution.TrueSight}

	c, ctx := drawTest(t, snap, fixedRand{0.99})
	x, y := ctx.CellToScreen(snap.Foods[1].Position)
	fg, _, _ := c.cells[[2]int{x, y}].style.Decompose()
	if fg != RgbReveal {
		t.Errorf("Expected reveal color on poisoned food, got %v", fg)
	}

	x, y = ctx.CellToScreen(snap.Foods[0].Position)
	fg, _, _ = c.cells[[2]int{x, y}].style.Decompose()
	if fg == RgbReveal {
		t.Error("Expected clean food untinted")
	}
}

func TestOverlays(t *testing.T) {
	snap := testSnapshot()

	snap.Phase = engine.PhaseReady
	c, _ := drawTest(t, snap, fixedRand{0.99})
	if !c.contains("SNAKE POISON") || !c.contains("Enter to start") {
		t.Error("Expected ready banner")
	}

	snap.Phase = engine.PhasePaused
	c, _ = drawTest(t, snap, fixedRand{0.99})
	if !c.contains("PAUSED") {
		t.Error("Expected paused banner")
	}

	snap.Phase = engine.PhaseOver
	snap.Height = 10
	snap.Label = snake.LabelDead
	snap.DeathCause = "hit the wall"
	snap.MaxLength = 5
	snap.Story = "This snake lived 3.0 seconds."
	c, _ = drawTest(t, snap, fixedRand{0.99})
	if !c.contains("GAME OVER") || !c.contains("It hit the wall.") || !c.contains("Score 2  r to") {
		t.Error("Expected game over banner with cause and score")
	}
	if !c.contains("This snake lived") || !c.contains("3.0 seconds.") {
		t.Error("Expected story in game over banner")
	}

	snap.Phase = engine.PhaseRunning
	c, _ = drawTest(t, snap, fixedRand{0.99})
	if c.contains("GAME OVER") || c.contains("PAUSED") {
		t.Error("Expected no banner while running")
	}
}

func TestDeadHead(t *testing.T) {
	snap := testSnapshot()
	snap.Label = snake.LabelDead
	c := newFakeCanvas(60, 16)
	ctx := NewRenderer(c, fixedRand{0.99}, 3, nil).Context(snap)

	snakeRenderer{}.Render(ctx, c)
	x, y := ctx.CellToScreen(snap.Body[0])
	if c.at(x, y) != GlyphHeadDead {
		t.Errorf("Expected dead head glyph, got %q", c.at(x, y))
	}
	fg, _, _ := c.cells[[2]int{x, y}].style.Decompose()
	if fg != RgbDeath {
		t.Errorf("Expected death color, got %v", fg)
	}
}

func TestTerminalTooSmall(t *testing.T) {
	c := newFakeCanvas(15, 5)
	NewRenderer(c, fixedRand{0.99}, 3, nil).Draw(testSnapshot())

	if !strings.HasPrefix(c.row(0), "terminal too") {
		t.Errorf("Expected size warning, got %q", c.row(0))
	}
}

func TestStatusLineToggle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(42)

	c := newFakeCanvas(60, 16)
	r := NewRenderer(c, fixedRand{0.99}, 3, reg)

	r.Draw(testSnapshot())
	if c.contains("engine.ticks=42") {
		t.Error("Expected status line hidden by default")
	}

	if !r.ToggleStatus() {
		t.Fatal("Expected toggle to report visible")
	}
	r.Draw(testSnapshot())
	if !c.contains("engine.ticks=42") {
		t.Error("Expected status line after toggle")
	}
}

type markRenderer struct {
	name  string
	order *[]string
}

func (m markRenderer) Render(RenderContext, Canvas) { *m.order = append(*m.order, m.name) }

func TestRegisterOrder(t *testing.T) {
	var order []string
	r := &Renderer{canvas: newFakeCanvas(40, 12), status: &statusRenderer{}}
	r.Register(markRenderer{"ui", &order}, PriorityUI)
	r.Register(markRenderer{"bg", &order}, PriorityBackground)
	r.Register(markRenderer{"ui2", &order}, PriorityUI)
	r.Register(markRenderer{"food", &order}, PriorityFood)

	r.Draw(testSnapshot())
	want := "bg,food,ui,ui2"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 10)
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three four" {
		t.Errorf("Unexpected wrap: %q", lines)
	}
	// "three four" is exactly ten columns
	lines = wrap("one two three four", 9)
	if got := strings.Join(lines, "|"); got != "one two|three|four" {
		t.Errorf("Expected one two|three|four, got %s", got)
	}
	if wrap("anything", 0) != nil {
		t.Error("Expected nil for zero width")
	}
}
