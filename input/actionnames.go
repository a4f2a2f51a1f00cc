package input

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/snake-poison/core"
)

var ErrUnknownAction = errors.New("unknown action")

// actionRegistry maps canonical action names to commands
// Used by the [keys] config loader to resolve action strings to bindings
var actionRegistry = map[string]Command{
	// Unbind sentinel
	"none": {},

	"quit":          {Type: IntentQuit},
	"toggle_mute":   {Type: IntentToggleMute},
	"toggle_pause":  {Type: IntentTogglePause},
	"start":         {Type: IntentStart},
	"restart":       {Type: IntentRestart},
	"toggle_status": {Type: IntentToggleStatus},

	"up":    {Type: IntentHeading, Heading: core.Up},
	"down":  {Type: IntentHeading, Heading: core.Down},
	"left":  {Type: IntentHeading, Heading: core.Left},
	"right": {Type: IntentHeading, Heading: core.Right},
}

// actionNames is the reverse of actionRegistry for non-heading intents
var actionNames = func() map[IntentType]string {
	m := make(map[IntentType]string)
	for name, cmd := range actionRegistry {
		if cmd.Type != IntentHeading && cmd.Type != IntentNone {
			m[cmd.Type] = name
		}
	}
	m[IntentResize] = "resize"
	return m
}()

func resolveAction(name string) (Command, error) {
	cmd, ok := actionRegistry[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return cmd, nil
}
