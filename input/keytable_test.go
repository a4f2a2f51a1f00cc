package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/core"
)

func TestTranslateDefaults(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want Command
	}{
		{"arrow up", tcell.KeyUp, 0, 0, Command{Type: IntentHeading, Heading: core.Up}},
		{"arrow down", tcell.KeyDown, 0, 0, Command{Type: IntentHeading, Heading: core.Down}},
		{"arrow left", tcell.KeyLeft, 0, 0, Command{Type: IntentHeading, Heading: core.Left}},
		{"arrow right", tcell.KeyRight, 0, 0, Command{Type: IntentHeading, Heading: core.Right}},
		{"w", tcell.KeyRune, 'w', 0, Command{Type: IntentHeading, Heading: core.Up}},
		{"A uppercase", tcell.KeyRune, 'A', tcell.ModShift, Command{Type: IntentHeading, Heading: core.Left}},
		{"s", tcell.KeyRune, 's', 0, Command{Type: IntentHeading, Heading: core.Down}},
		{"d", tcell.KeyRune, 'd', 0, Command{Type: IntentHeading, Heading: core.Right}},
		{"k", tcell.KeyRune, 'k', 0, Command{Type: IntentHeading, Heading: core.Up}},
		{"h", tcell.KeyRune, 'h', 0, Command{Type: IntentHeading, Heading: core.Left}},
		{"j", tcell.KeyRune, 'j', 0, Command{Type: IntentHeading, Heading: core.Down}},
		{"l", tcell.KeyRune, 'l', 0, Command{Type: IntentHeading, Heading: core.Right}},
		{"space", tcell.KeyRune, ' ', 0, Command{Type: IntentTogglePause}},
		{"enter", tcell.KeyEnter, 0, 0, Command{Type: IntentStart}},
		{"r", tcell.KeyRune, 'r', 0, Command{Type: IntentRestart}},
		{"q", tcell.KeyRune, 'q', 0, Command{Type: IntentQuit}},
		{"esc", tcell.KeyEscape, 0, 0, Command{Type: IntentQuit}},
		{"ctrl-c key", tcell.KeyCtrlC, 0, tcell.ModCtrl, Command{Type: IntentQuit}},
		{"ctrl-c rune", tcell.KeyRune, 'c', tcell.ModCtrl, Command{Type: IntentQuit}},
		{"ctrl-w ignored", tcell.KeyRune, 'w', tcell.ModCtrl, Command{}},
		{"m", tcell.KeyRune, 'm', 0, Command{Type: IntentToggleMute}},
		{"unbound rune", tcell.KeyRune, 'z', 0, Command{}},
		{"unbound key", tcell.KeyF5, 0, 0, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.key, tt.r, tt.mod); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFromEventResize(t *testing.T) {
	if got := FromEvent(tcell.NewEventResize(80, 24)); got.Type != IntentResize {
		t.Errorf("Expected resize, got %v", got)
	}
	if got := FromEvent(nil); got.Type != IntentNone {
		t.Errorf("Expected none for nil event, got %v", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	kt := DefaultKeyTable().Clone()

	err := kt.Apply(
		map[string]string{"x": "restart", "space": "quit", "w": "none"},
		map[string]string{"f1": "toggle_pause"},
	)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := kt.Translate(tcell.KeyRune, 'x', 0); got.Type != IntentRestart {
		t.Errorf("Expected restart on x, got %v", got)
	}
	if got := kt.Translate(tcell.KeyRune, ' ', 0); got.Type != IntentQuit {
		t.Errorf("Expected quit on space, got %v", got)
	}
	if got := kt.Translate(tcell.KeyRune, 'w', 0); got.Type != IntentNone {
		t.Errorf("Expected w unbound, got %v", got)
	}
	if got := kt.Translate(tcell.KeyF1, 0, 0); got.Type != IntentTogglePause {
		t.Errorf("Expected pause on F1, got %v", got)
	}

	// Defaults are untouched by the clone's overrides
	if got := Translate(tcell.KeyRune, 'x', 0); got.Type != IntentNone {
		t.Errorf("Expected default table unchanged, got %v", got)
	}
}

func TestApplyErrors(t *testing.T) {
	kt := DefaultKeyTable()

	if err := kt.Apply(map[string]string{"x": "fly"}, nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
	if err := kt.Apply(map[string]string{"xy": "quit"}, nil); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey for multi-char rune, got %v", err)
	}
	if err := kt.Apply(nil, map[string]string{"Hyper": "quit"}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey for bad key name, got %v", err)
	}
}

func TestCommandString(t *testing.T) {
	if got := (Command{Type: IntentRestart}).String(); got != "restart" {
		t.Errorf("Expected restart, got %s", got)
	}
	if got := (Command{}).String(); got != "none" {
		t.Errorf("Expected none, got %s", got)
	}
	if got := (Command{Type: IntentHeading, Heading: core.Up}).String(); got != "heading "+core.Up.String() {
		t.Errorf("Unexpected heading string %s", got)
	}
}
