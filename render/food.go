package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/world"
)

// Food glyphs
const (
	GlyphFoodNormal     = '●'
	GlyphFoodSuspicious = '◆'
	GlyphFoodValuable   = '★'
)

// foodRenderer draws food items
// Under Perception each item may vanish for a frame; True Sight tints poisoned items
type foodRenderer struct {
	rng Rand
}

func foodGlyph(t world.FoodType) rune {
	switch t {
	case world.Suspicious:
		return GlyphFoodSuspicious
	case world.Valuable:
		return GlyphFoodValuable
	default:
		return GlyphFoodNormal
	}
}

func foodColor(th Theme, t world.FoodType) tcell.Color {
	switch t {
	case world.Suspicious:
		return th.FoodSuspicious
	case world.Valuable:
		return th.FoodValuable
	default:
		return th.FoodNormal
	}
}

func (r *foodRenderer) Render(ctx RenderContext, c Canvas) {
	bg := tcell.StyleDefault.Background(RgbBackground)

	flicker := 0.0
	if ctx.Snap.Phase == engine.PhaseRunning {
		flicker = parameter.PerceptionFlickerChance * ctx.Snap.Intensity(poison.Perception)
	}
	trueSight := slices.Contains(ctx.Snap.Abilities, evolution.TrueSight)

	for _, f := range ctx.Snap.Foods {
		if flicker > 0 && r.rng.Float64() < flicker {
			continue
		}
		color := foodColor(ctx.Theme, f.Type)
		if trueSight && f.Poisoned {
			color = RgbReveal
		}
		sx, sy := ctx.CellToScreen(f.Position)
		c.SetContent(sx, sy, foodGlyph(f.Type), nil, bg.Foreground(color))
	}
}
