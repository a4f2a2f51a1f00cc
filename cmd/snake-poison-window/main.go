package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-poison/app"
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/input"
	"github.com/lixenwraith/snake-poison/parameter"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML settings file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/snake-poison.log")
	widthFlag  = flag.Int("width", 0, "Grid width in cells")
	heightFlag = flag.Int("height", 0, "Grid height in cells")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

// keyBindings maps raylib keys to the same commands as the terminal defaults
var keyBindings = map[int32]input.Command{
	rl.KeyUp:    {Type: input.IntentHeading, Heading: core.Up},
	rl.KeyDown:  {Type: input.IntentHeading, Heading: core.Down},
	rl.KeyLeft:  {Type: input.IntentHeading, Heading: core.Left},
	rl.KeyRight: {Type: input.IntentHeading, Heading: core.Right},
	rl.KeyW:     {Type: input.IntentHeading, Heading: core.Up},
	rl.KeyS:     {Type: input.IntentHeading, Heading: core.Down},
	rl.KeyA:     {Type: input.IntentHeading, Heading: core.Left},
	rl.KeyD:     {Type: input.IntentHeading, Heading: core.Right},
	rl.KeyK:     {Type: input.IntentHeading, Heading: core.Up},
	rl.KeyJ:     {Type: input.IntentHeading, Heading: core.Down},
	rl.KeyH:     {Type: input.IntentHeading, Heading: core.Left},
	rl.KeyL:     {Type: input.IntentHeading, Heading: core.Right},

	rl.KeyEnter:  {Type: input.IntentStart},
	rl.KeySpace:  {Type: input.IntentTogglePause},
	rl.KeyP:      {Type: input.IntentTogglePause},
	rl.KeyR:      {Type: input.IntentRestart},
	rl.KeyM:      {Type: input.IntentToggleMute},
	rl.KeyTab:    {Type: input.IntentToggleStatus},
	rl.KeyQ:      {Type: input.IntentQuit},
	rl.KeyEscape: {Type: input.IntentQuit},
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := app.SetupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := app.LoadConfig(app.Options{
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-poison: %v\n", err)
		os.Exit(1)
	}

	// Window ticks are not frame-locked; raylib paces drawing on the main thread
	session, _, err := app.New(cfg, *muteFlag, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-poison: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	v := newView(cfg.Grid.Width, cfg.Grid.Height, cfg.Snake.InitialLength,
		rand.New(rand.NewSource(uint64(time.Now().UnixNano()))), session.Status())

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(v.windowWidth(), v.windowHeight(), "Snake Poison")
	defer rl.CloseWindow()
	core.SetCrashReset(rl.CloseWindow)
	// Esc is a game binding, not a window close
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(parameter.WindowTargetFPS)

	if err := session.Start(); err != nil {
		return
	}

	game := session.Game()
	for !rl.WindowShouldClose() {
		for key, cmd := range keyBindings {
			if !rl.IsKeyPressed(key) {
				continue
			}
			if cmd.Type == input.IntentToggleStatus {
				v.showStatus = !v.showStatus
			}
			if !session.Dispatch(cmd) {
				return
			}
		}

		v.draw(game.Snapshot())
	}
}
