// Package app assembles one playable session: settings, the service hub,
// the game and its clock scheduler. Front-ends own only drawing and input.
package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/snake-poison/audio"
	"github.com/lixenwraith/snake-poison/config"
	"github.com/lixenwraith/snake-poison/engine"
	"github.com/lixenwraith/snake-poison/history"
	"github.com/lixenwraith/snake-poison/input"
	"github.com/lixenwraith/snake-poison/service"
	"github.com/lixenwraith/snake-poison/status"
)

// Options are the command-line overrides shared by every front-end
// Zero values leave the file and environment settings untouched
type Options struct {
	ConfigPath string
	Seed       uint64
	Width      int
	Height     int
	Mute       bool
}

// LoadConfig layers defaults, the optional file, the environment and opts
func LoadConfig(opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.Width > 0 {
		cfg.Grid.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Grid.Height = opts.Height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App is a running session
type App struct {
	cfg       *config.Config
	hub       *service.Hub
	audio     *audio.Service
	history   *history.Service
	clock     *engine.PausableClock
	game      *engine.Game
	scheduler *engine.ClockScheduler
	status    *status.Registry
}

// New initializes services and builds the game in the Ready phase
// frameReady is the renderer's handshake channel and may be nil
func New(cfg *config.Config, mute bool, frameReady <-chan struct{}) (*App, <-chan struct{}, error) {
	a := &App{
		cfg:     cfg,
		hub:     service.NewHub(),
		audio:   audio.NewService(cfg.Audio, mute),
		history: history.NewService(cfg.History),
		clock:   engine.NewPausableClock(),
		status:  status.NewRegistry(),
	}

	for _, svc := range []service.Service{a.audio, a.history} {
		if err := a.hub.Register(svc); err != nil {
			return nil, nil, err
		}
	}
	if err := a.hub.InitAll(); err != nil {
		return nil, nil, err
	}

	store := a.history.Store()
	a.status.Bools.Get(status.KeyAudioEnabled).Store(!a.audio.IsDisabled())
	a.status.Ints.Get(status.KeyHistoryGames).Store(int64(store.Stats().GamesPlayed))
	// Archived abilities are shown, never fed back into the new session
	archived := store.Abilities()
	names := make([]string, 0, len(archived))
	for _, ab := range archived {
		names = append(names, ab.String())
	}
	a.status.Strings.Get(status.KeyHistoryAbilities).Store(strings.Join(names, ","))

	game, err := engine.NewGame(cfg,
		engine.WithClock(a.clock),
		engine.WithStatus(a.status),
		engine.WithHandler(a.audio.Handler()),
		engine.WithHandler(a.history.Handler()),
	)
	if err != nil {
		a.hub.StopAll()
		return nil, nil, fmt.Errorf("build game: %w", err)
	}
	a.game = game

	var updateDone <-chan struct{}
	a.scheduler, updateDone = engine.NewClockScheduler(game, a.clock, frameReady)
	return a, updateDone, nil
}

// Start launches the services and the tick loop
func (a *App) Start() error {
	if err := a.hub.StartAll(); err != nil {
		return err
	}
	a.scheduler.Start()
	log.Printf("app: session started, grid %dx%d", a.cfg.Grid.Width, a.cfg.Grid.Height)
	return nil
}

// Close stops ticking, drops subscribers and flushes services
func (a *App) Close() {
	a.scheduler.Stop()
	a.game.Close()
	a.hub.StopAll()
}

func (a *App) Game() *engine.Game         { return a.game }
func (a *App) Config() *config.Config     { return a.cfg }
func (a *App) Status() *status.Registry   { return a.status }
func (a *App) Sound() *audio.SoundManager { return a.audio.Manager() }

// Dispatch applies a game command and reports whether the session continues
// Display intents (status line, resize) belong to the front-end and are ignored here
func (a *App) Dispatch(cmd input.Command) bool {
	switch cmd.Type {
	case input.IntentQuit:
		return false

	case input.IntentHeading:
		a.game.SetHeading(cmd.Heading)

	case input.IntentStart:
		switch a.game.Phase() {
		case engine.PhaseOver:
			a.scheduler.RequestReset()
		case engine.PhasePaused:
			a.game.Resume()
		default:
			a.game.Start()
		}

	case input.IntentTogglePause:
		if a.game.Phase() == engine.PhaseReady {
			a.game.Start()
		} else {
			a.game.TogglePause()
		}

	case input.IntentRestart:
		// Through the scheduler so tick deadlines realign with the new life
		a.scheduler.RequestReset()

	case input.IntentToggleMute:
		muted := a.audio.Manager().ToggleMute()
		log.Printf("app: audio muted=%t", muted)
	}
	return true
}
