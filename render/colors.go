package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/world"
)

// Shared RGB colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbDimText    = tcell.NewRGBColor(120, 120, 130) // Muted gray for labels
	RgbMessage    = tcell.NewRGBColor(255, 215, 100) // Warm yellow for narrative lines
	RgbDeath      = tcell.NewRGBColor(255, 80, 80)   // Red for death overlay
	RgbReveal     = tcell.NewRGBColor(200, 60, 255)  // Violet for poisoned food under True Sight

	RgbPerception = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbImpulsive  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMemory     = tcell.NewRGBColor(160, 160, 170) // Gray
	RgbEvolving   = tcell.NewRGBColor(50, 255, 50)   // Bright green
)

// Theme is the palette for one world style
type Theme struct {
	Border         tcell.Color
	Obstacle       tcell.Color
	Grid           tcell.Color
	Head           tcell.Color
	Body           tcell.Color
	Faded          tcell.Color
	FoodNormal     tcell.Color
	FoodSuspicious tcell.Color
	FoodValuable   tcell.Color

	// GridGlyph marks empty cells, 0 leaves them blank
	GridGlyph rune

	// Rainbow cycles body hue per segment and frame
	Rainbow bool
}

var themes = map[world.Style]Theme{
	world.Minimal: {
		Border:         tcell.NewRGBColor(180, 180, 180),
		Obstacle:       tcell.NewRGBColor(140, 140, 140),
		Head:           tcell.NewRGBColor(255, 255, 255),
		Body:           tcell.NewRGBColor(0, 200, 0),
		Faded:          tcell.NewRGBColor(0, 90, 0),
		FoodNormal:     tcell.NewRGBColor(255, 80, 80),
		FoodSuspicious: tcell.NewRGBColor(255, 165, 0),
		FoodValuable:   tcell.NewRGBColor(255, 255, 0),
	},
	world.Cyber: {
		Border:         tcell.NewRGBColor(0, 200, 200),
		Obstacle:       tcell.NewRGBColor(128, 0, 128),
		Grid:           tcell.NewRGBColor(40, 45, 70),
		Head:           tcell.NewRGBColor(255, 0, 255),
		Body:           tcell.NewRGBColor(0, 255, 255),
		Faded:          tcell.NewRGBColor(0, 110, 120),
		FoodNormal:     tcell.NewRGBColor(140, 190, 255),
		FoodSuspicious: tcell.NewRGBColor(255, 120, 200),
		FoodValuable:   tcell.NewRGBColor(255, 255, 120),
		GridGlyph:      '·',
	},
	world.Organic: {
		Border:         tcell.NewRGBColor(101, 67, 33),
		Obstacle:       tcell.NewRGBColor(120, 90, 50),
		Head:           tcell.NewRGBColor(144, 238, 144),
		Body:           tcell.NewRGBColor(60, 160, 60),
		Faded:          tcell.NewRGBColor(40, 80, 40),
		FoodNormal:     tcell.NewRGBColor(220, 60, 60),
		FoodSuspicious: tcell.NewRGBColor(200, 150, 60),
		FoodValuable:   tcell.NewRGBColor(255, 220, 80),
	},
	world.Chaotic: {
		Border:         tcell.NewRGBColor(255, 80, 80),
		Obstacle:       tcell.NewRGBColor(200, 50, 50),
		Head:           tcell.NewRGBColor(255, 255, 255),
		Body:           tcell.NewRGBColor(255, 255, 255),
		Faded:          tcell.NewRGBColor(90, 90, 90),
		FoodNormal:     tcell.NewRGBColor(255, 255, 255),
		FoodSuspicious: tcell.NewRGBColor(255, 165, 0),
		FoodValuable:   tcell.NewRGBColor(255, 255, 0),
		Rainbow:        true,
	},
}

// ThemeFor returns the palette of a style, Minimal for unknown styles
func ThemeFor(s world.Style) Theme {
	if t, ok := themes[s]; ok {
		return t
	}
	return themes[world.Minimal]
}

// PoisonColor returns the HUD color of a poison kind
func PoisonColor(k poison.Kind) tcell.Color {
	switch k {
	case poison.Perception:
		return RgbPerception
	case poison.Impulsive:
		return RgbImpulsive
	case poison.Memory:
		return RgbMemory
	case poison.Evolving:
		return RgbEvolving
	default:
		return RgbStatusText
	}
}

// RainbowColor returns a saturated hue for segment i at frame
func RainbowColor(i int, frame int64) tcell.Color {
	h := math.Mod(float64(i)*25+float64(frame)*7, 360)
	r, g, b := colorful.Hsv(h, 0.8, 1.0).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim scales a color toward black by factor in [0, 1]
func Dim(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	factor = min(1, max(0, factor))
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
