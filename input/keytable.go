package input

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-poison/core"
)

var ErrUnknownKey = errors.New("unknown key")

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Command

	// Rune bindings, matched case-insensitively
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	up := Command{Type: IntentHeading, Heading: core.Up}
	down := Command{Type: IntentHeading, Heading: core.Down}
	left := Command{Type: IntentHeading, Heading: core.Left}
	right := Command{Type: IntentHeading, Heading: core.Right}
	quit := Command{Type: IntentQuit}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
			tcell.KeyTab:    {Type: IntentToggleStatus},
		},

		Runes: map[rune]Command{
			// WASD
			'w': up,
			'a': left,
			's': down,
			'd': right,

			// vi
			'k': up,
			'h': left,
			'j': down,
			'l': right,

			' ': {Type: IntentTogglePause},
			'p': {Type: IntentTogglePause},
			'r': {Type: IntentRestart},
			'm': {Type: IntentToggleMute},
			'q': quit,
		},
	}
}

// Clone returns an independent copy for per-session overrides
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Translate maps one key press to a command
func (kt *KeyTable) Translate(key tcell.Key, r rune, mod tcell.ModMask) Command {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}

	// Terminals differ on whether Ctrl+C arrives as KeyCtrlC or a modified rune
	if mod&tcell.ModCtrl != 0 {
		if unicode.ToLower(r) == 'c' {
			return Command{Type: IntentQuit}
		}
		return Command{}
	}

	if cmd, ok := kt.Runes[r]; ok {
		return cmd
	}
	return kt.Runes[unicode.ToLower(r)]
}

// FromEvent maps a tcell event to a command; non-key events other than resize yield IntentNone
func (kt *KeyTable) FromEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Translate(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		return Command{Type: IntentResize}
	}
	return Command{}
}

// Apply overlays bindings from config: runes maps single characters (or "space")
// to action names, special maps tcell key names such as "Up" or "F1"
func (kt *KeyTable) Apply(runes, special map[string]string) error {
	for keyStr, action := range runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return fmt.Errorf("[keys.runes] key %q: %w", keyStr, err)
		}
		cmd, err := resolveAction(action)
		if err != nil {
			return fmt.Errorf("[keys.runes] key %q: %w", keyStr, err)
		}
		kt.Runes[unicode.ToLower(r)] = cmd
	}

	for keyStr, action := range special {
		k, ok := keyByName(keyStr)
		if !ok {
			return fmt.Errorf("[keys.special] %w: %q", ErrUnknownKey, keyStr)
		}
		cmd, err := resolveAction(action)
		if err != nil {
			return fmt.Errorf("[keys.special] key %q: %w", keyStr, err)
		}
		kt.SpecialKeys[k] = cmd
	}
	return nil
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: expected single character", ErrUnknownKey)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// keyByName inverts tcell.KeyNames, ignoring case
func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

var defaultTable = DefaultKeyTable()

// Translate maps a key press through the default bindings
func Translate(key tcell.Key, r rune, mod tcell.ModMask) Command {
	return defaultTable.Translate(key, r, mod)
}

// FromEvent maps a tcell event through the default bindings
func FromEvent(ev tcell.Event) Command {
	return defaultTable.FromEvent(ev)
}
