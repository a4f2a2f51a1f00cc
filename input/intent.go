package input

import "github.com/lixenwraith/snake-poison/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Game control
	IntentHeading     // arrows, wasd, hjkl
	IntentTogglePause // Space
	IntentStart       // Enter
	IntentRestart     // r

	// Display
	IntentToggleStatus // Tab, shows the metric line
)

// Command is the semantic result of one input event
// Heading is set only for IntentHeading
type Command struct {
	Type    IntentType
	Heading core.Direction
}

func (c Command) String() string {
	if c.Type == IntentHeading {
		return "heading " + c.Heading.String()
	}
	if name, ok := actionNames[c.Type]; ok {
		return name
	}
	return "none"
}
