package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-poison/app"
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/input"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/render"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML settings file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/snake-poison.log")
	widthFlag  = flag.Int("width", 0, "Grid width in cells")
	heightFlag = flag.Int("height", 0, "Grid height in cells")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

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

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys.Runes, cfg.Keys.Special); err != nil {
		fmt.Fprintf(os.Stderr, "snake-poison: key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)

	// Frame synchronization: the scheduler waits for the previous frame before ticking
	frameReady := make(chan struct{}, 1)

	session, updateDone, err := app.New(cfg, *muteFlag, frameReady)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snake-poison: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	renderer := render.NewRenderer(
		screen,
		rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		cfg.Snake.InitialLength,
		session.Status(),
	)

	frameReady <- struct{}{}
	if err := session.Start(); err != nil {
		log.Printf("main: %v", err)
		return
	}

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	game := session.Game()
	for {
		select {
		case ev := <-eventChan:
			cmd := keys.FromEvent(ev)
			switch cmd.Type {
			case input.IntentNone:
				continue
			case input.IntentResize:
				screen.Sync()
			case input.IntentToggleStatus:
				renderer.ToggleStatus()
			}
			if !session.Dispatch(cmd) {
				return
			}

		case <-frameTicker.C:
			// Release the next tick only after its predecessor has been drawn
			updatePending := false
			select {
			case <-updateDone:
			default:
				updatePending = true
			}

			renderer.Draw(game.Snapshot())

			if !updatePending || !game.Running() {
				select {
				case frameReady <- struct{}{}:
				default:
				}
			}
		}
	}
}
