package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/engine"
)

// overlayRenderer draws the phase banners inside the board
type overlayRenderer struct{}

func (overlayRenderer) Render(ctx RenderContext, c Canvas) {
	var lines []string
	var accent tcell.Color
	s := ctx.Snap

	switch s.Phase {
	case engine.PhaseReady:
		accent = RgbEvolving
		lines = []string{
			"SNAKE POISON",
			"",
			"Enter to start",
			"arrows, wasd or hjkl steer",
			"space pauses, m mutes, q quits",
		}
	case engine.PhasePaused:
		accent = RgbMessage
		lines = []string{"PAUSED", "", "space to resume"}
	case engine.PhaseOver:
		accent = RgbDeath
		lines = []string{"GAME OVER"}
		if s.DeathCause != "" {
			lines = append(lines, "It "+s.DeathCause+".")
		}
		footer := []string{"", fmt.Sprintf("Score %d  r to restart, q to quit", s.Score(ctx.InitialLength))}

		// The story takes whatever rows the header and footer leave
		room := s.Height - len(lines) - 1 - len(footer)
		if story := wrap(s.Story, max(10, ctx.BoardWidth()-6)); room > 0 && len(story) > 0 {
			lines = append(lines, "")
			lines = append(lines, story[:min(room, len(story))]...)
		}
		lines = append(lines, footer...)
	default:
		return
	}

	inner := ctx.BoardWidth() - 2
	top := ctx.OriginY + 1 + max(0, (ctx.Snap.Height-len(lines))/2)
	bottom := ctx.OriginY + ctx.BoardHeight() - 1
	box := tcell.StyleDefault.Background(RgbBackground)
	text := box.Foreground(RgbStatusText)

	for i, line := range lines {
		y := top + i
		if y >= bottom {
			break
		}
		fillRow(c, ctx.OriginX+1, y, inner, box)
		style := text
		if i == 0 {
			style = box.Foreground(accent).Bold(true)
		}
		drawCentered(c, ctx.OriginX+1, inner, y, truncate(line, inner), style)
	}
}
