package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
)

// hudRenderer draws the status lines under the board
type hudRenderer struct{}

func (hudRenderer) Render(ctx RenderContext, c Canvas) {
	s := ctx.Snap
	base := tcell.StyleDefault.Background(RgbBackground)
	text := base.Foreground(RgbStatusText)
	dim := base.Foreground(RgbDimText)
	x0, y := ctx.OriginX, ctx.HUDRow()

	// Line 1: counters
	line := fmt.Sprintf("Len %d  Score %d  Food %d  Moves %d  Life %.1fs  Tick %dms",
		len(s.Body), s.Score(ctx.InitialLength), s.FoodEaten, s.TotalMoves,
		s.LifeSpan.Seconds(), s.Interval.Milliseconds())
	drawText(c, x0, y, truncate(line, ctx.ScreenWidth-x0), text)

	// Line 2: label, poisons, abilities
	x := drawText(c, x0, y+1, s.Label.String(), text.Bold(true))
	for _, p := range s.Poisons {
		x = drawText(c, x+2, y+1, PoisonLabel(p), base.Foreground(PoisonColor(p.Kind)))
	}
	if len(s.Abilities) > 0 {
		names := make([]string, len(s.Abilities))
		for i, a := range s.Abilities {
			names[i] = a.String()
		}
		drawText(c, x+2, y+1, "["+strings.Join(names, " ")+"]", base.Foreground(RgbEvolving))
	}

	// Line 3: latest narrative, or the world state when quiet
	if s.Message != "" {
		drawText(c, x0, y+2, truncate(s.Message, ctx.ScreenWidth-x0), base.Foreground(RgbMessage))
	} else {
		summary := fmt.Sprintf("%s world  difficulty %.2f  risk %.2f", s.Style, s.Difficulty, s.RiskPreference)
		drawText(c, x0, y+2, truncate(summary, ctx.ScreenWidth-x0), dim)
	}
}

// PoisonLabel shows remaining time for timed kinds and the stage for Evolving
func PoisonLabel(p engine.PoisonView) string {
	if p.Kind == poison.Evolving {
		return fmt.Sprintf("%s %d/%d", p.Kind, p.Stage, parameter.EvolutionFinalStage)
	}
	if p.Permanent {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s %.1fs", p.Kind, p.Remaining.Seconds())
}
