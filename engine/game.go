// Package engine runs the snake-poison rules: a fixed-interval tick that ages
// poisons, moves the snake, resolves collisions and food, and adapts the
// world. Front-ends drive it through commands and read Snapshot copies.
package engine

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-poison/config"
	"github.com/lixenwraith/snake-poison/core"
	"github.com/lixenwraith/snake-poison/event"
	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
	"github.com/lixenwraith/snake-poison/status"
	"github.com/lixenwraith/snake-poison/world"
)

// pauser is implemented by clocks that follow the game's pause state
type pauser interface {
	Pause()
	Resume()
}

// Game owns all rule state; every mutation happens under mu
// Events produced while mu is held are dispatched after it is released
type Game struct {
	mu  sync.Mutex
	cfg config.Config

	clock core.Clock
	rng   *rand.Rand
	seed  uint64

	grid    *world.Grid
	snake   *snake.Snake
	policy  *evolution.Policy
	spawner *world.Spawner

	phase     Phase
	tick      int64
	interval  time.Duration
	foodEaten int
	message   string

	queue      *event.EventQueue
	router     *event.Router[Snapshot]
	dispatchMu sync.Mutex

	pending []event.Handler[Snapshot]

	statusReg      *status.Registry
	statTicks      *atomic.Int64
	statEvents     *atomic.Int64
	statInterval   *atomic.Int64
	statFood       *atomic.Int64
	statPoisons    *atomic.Int64
	statPlayed     *atomic.Int64
	statDifficulty *status.AtomicFloat
	statRisk       *status.AtomicFloat
	statStyle      *status.AtomicString
	statPhase      *status.AtomicString
	statDeath      *status.AtomicString
}

// NewGame validates cfg and builds a game in the Ready phase with food placed
func NewGame(cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   *cfg,
		seed:  cfg.Seed,
		queue: event.NewEventQueue(),
	}
	g.router = event.NewRouter[Snapshot](g.queue)

	for _, opt := range opts {
		opt(g)
	}

	if g.clock == nil {
		g.clock = NewPausableClock()
	}
	if g.seed == 0 {
		g.seed = uint64(time.Now().UnixNano())
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	if g.statusReg == nil {
		g.statusReg = status.NewRegistry()
	}
	g.bindMetrics()

	g.policy = evolution.NewPolicy(g.rng, cfg.Evolution.StageInterval.Duration)
	g.spawner = world.NewSpawner(world.SpawnConfig{
		NormalBelow:          cfg.Spawn.NormalBelow,
		SuspiciousBelow:      cfg.Spawn.SuspiciousBelow,
		ValuablePoisonChance: cfg.Spawn.ValuablePoisonChance,
	}, g.rng)

	for _, h := range g.pending {
		g.router.Register(h)
	}
	g.pending = nil

	if err := g.reset(); err != nil {
		return nil, err
	}
	g.phase = PhaseReady
	g.statPhase.Store(g.phase.String())
	g.queue.Drain()

	return g, nil
}

func (g *Game) bindMetrics() {
	reg := g.statusReg
	g.statTicks = reg.Ints.Get(status.KeyTicks)
	g.statEvents = reg.Ints.Get(status.KeyEventsPushed)
	g.statInterval = reg.Ints.Get(status.KeyTickInterval)
	g.statFood = reg.Ints.Get(status.KeyFoodEaten)
	g.statPoisons = reg.Ints.Get(status.KeyPoisonsTaken)
	g.statPlayed = reg.Ints.Get(status.KeyGamesPlayed)
	g.statDifficulty = reg.Floats.Get(status.KeyDifficulty)
	g.statRisk = reg.Floats.Get(status.KeyRiskPreference)
	g.statStyle = reg.Strings.Get(status.KeyStyle)
	g.statPhase = reg.Strings.Get(status.KeyPhase)
	g.statDeath = reg.Strings.Get(status.KeyLastDeathCause)
}

// reset builds a fresh grid, snake and food for a new life
// The ability set survives; everything else starts over
func (g *Game) reset() error {
	grid, err := world.New(g.cfg.Grid.Width, g.cfg.Grid.Height)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	length := g.cfg.Snake.InitialLength
	start := core.Point{X: g.cfg.Snake.StartX, Y: g.cfg.Snake.StartY}
	if start.X < 0 || start.Y < 0 || !grid.InBounds(start) {
		start = core.Point{X: grid.Width() / 2, Y: grid.Height() / 2}
	}
	// Body trails left of the head and must stay on the board
	start.X = max(start.X, length-1)

	s := snake.New(start, core.Right, length, g.clock)

	for _, o := range g.cfg.Grid.Obstacles {
		p := core.Point{X: o[0], Y: o[1]}
		if s.Occupies(p) {
			log.Printf("engine: obstacle %v overlaps the starting body, skipped", p)
			continue
		}
		if err := grid.SetObstacle(p); err != nil {
			log.Printf("engine: obstacle %v: %v", p, err)
		}
	}

	g.grid = grid
	g.snake = s
	g.tick = 0
	g.interval = g.cfg.Tick.Interval.Duration
	g.foodEaten = 0
	g.message = ""

	g.topUpFood()

	g.statTicks.Store(0)
	g.statInterval.Store(g.interval.Milliseconds())
	g.statDifficulty.Set(grid.Difficulty())
	g.statStyle.Store(grid.Style().String())
	return nil
}

// Subscribe registers h for the events it declares
// Handlers run on the goroutine that issued the command or tick and must not
// call back into Game commands
func (g *Game) Subscribe(h event.Handler[Snapshot]) {
	g.router.Register(h)
}

// Close drops every subscriber
func (g *Game) Close() {
	g.router.Reset()
}

// Status returns the metrics registry the game writes to
func (g *Game) Status() *status.Registry {
	return g.statusReg
}

// Config returns the settings the game was built with
func (g *Game) Config() config.Config {
	return g.cfg
}

// ===== COMMANDS =====

// Start moves Ready to Running; from Over it restarts
func (g *Game) Start() bool {
	g.mu.Lock()
	switch g.phase {
	case PhaseReady:
		g.setPhase(PhaseRunning)
		g.statPlayed.Add(1)
		g.emit(event.EventGameStarted, nil)
	case PhaseOver:
		g.mu.Unlock()
		return g.Restart() == nil
	default:
		g.mu.Unlock()
		return false
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.dispatch(snap)
	return true
}

// Pause freezes a running game
func (g *Game) Pause() bool {
	return g.transition(PhaseRunning, PhasePaused, event.EventGamePaused)
}

// Resume continues a paused game
func (g *Game) Resume() bool {
	return g.transition(PhasePaused, PhaseRunning, event.EventGameResumed)
}

// TogglePause flips between Running and Paused
func (g *Game) TogglePause() bool {
	switch g.Phase() {
	case PhaseRunning:
		return g.Pause()
	case PhasePaused:
		return g.Resume()
	default:
		return false
	}
}

func (g *Game) transition(from, to Phase, typ event.EventType) bool {
	g.mu.Lock()
	if g.phase != from {
		g.mu.Unlock()
		return false
	}
	g.setPhase(to)
	g.emit(typ, nil)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.dispatch(snap)
	return true
}

// Restart discards the current life and starts a new one immediately
// Pending events of the old life are dropped; subscribers stay registered
// dispatchMu is taken before mu, the order dispatch uses, so draining never
// races a dispatch still delivering the old life
func (g *Game) Restart() error {
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()

	g.mu.Lock()
	g.queue.Drain()
	if err := g.reset(); err != nil {
		g.mu.Unlock()
		return err
	}
	g.queue.Drain()
	g.setPhase(PhaseRunning)
	g.statPlayed.Add(1)
	g.emit(event.EventGameStarted, nil)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.router.DispatchAll(snap)
	return nil
}

// SetHeading queues a turn for the next move
// Only the exact reversal of the current heading is refused; two turns
// between ticks may still fold the head into the neck
func (g *Game) SetHeading(d core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseOver || !g.snake.Alive() {
		return false
	}
	return g.snake.SetHeading(d)
}

func (g *Game) setPhase(to Phase) {
	if !CanTransition(g.phase, to) {
		log.Printf("engine: unexpected phase transition %s -> %s", g.phase, to)
	}
	g.phase = to
	g.statPhase.Store(to.String())

	if p, ok := g.clock.(pauser); ok {
		if to == PhasePaused {
			p.Pause()
		} else {
			p.Resume()
		}
	}
}

// ===== QUERIES =====

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Running reports whether Tick would advance the game
func (g *Game) Running() bool {
	return g.Phase() == PhaseRunning
}

// Interval returns the current tick interval, including Impulsive jitter
func (g *Game) Interval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.interval
}

// Snapshot returns an immutable copy of the game state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Abilities returns the unlocked abilities in unlock order
func (g *Game) Abilities() []evolution.Ability {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.policy.UnlockedAbilities()
}

// ===== TICK =====

// Tick advances the game by one step of dt game time
// A non-positive dt uses the current interval. No-op unless Running
func (g *Game) Tick(dt time.Duration) {
	g.mu.Lock()
	if g.phase != PhaseRunning {
		g.mu.Unlock()
		return
	}
	if dt <= 0 {
		dt = g.interval
	}

	g.tick++
	g.statTicks.Store(g.tick)

	g.processPoisons(dt)
	g.updateInterval()

	g.snake.Move()
	head := g.snake.Head()
	g.emit(event.EventMove, &event.MovePayload{Head: head})

	if cause, dead := g.collision(head); dead {
		g.gameOver(cause)
	} else {
		g.consumeFood(head)
		g.topUpFood()
		g.evolveWorld()
	}

	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.dispatch(snap)
}

func (g *Game) processPoisons(dt time.Duration) {
	for _, r := range g.policy.Tick(g.snake, dt) {
		if r.Expired {
			g.emit(event.EventPoisonExpired, &event.PoisonExpiredPayload{Kind: r.Kind})
			continue
		}
		g.message = r.Message
		g.emit(event.EventEvolutionStage, &event.EvolutionStagePayload{
			Kind:     r.Kind,
			Stage:    r.Stage,
			Name:     r.Name,
			Message:  r.Message,
			Terminal: r.Terminal,
		})
		if r.Unlocked != evolution.None {
			g.emit(event.EventAbilityUnlocked, &event.AbilityUnlockedPayload{Ability: r.Unlocked})
		}
	}
}

// updateInterval re-draws the tick interval while Impulsive is active
func (g *Game) updateInterval() {
	var intensity float64
	found := false
	for _, ap := range g.snake.ActivePoisons() {
		if ap.Kind == poison.Impulsive {
			found = true
			intensity = max(intensity, ap.Intensity)
		}
	}

	if !found {
		g.interval = g.cfg.Tick.Interval.Duration
	} else if g.rng.Float64() < g.cfg.Tick.JitterChance*intensity {
		lo := g.cfg.Tick.JitterMin.Duration
		span := g.cfg.Tick.JitterMax.Duration - lo
		g.interval = lo + time.Duration(g.rng.Int63n(int64(span)))
	}
	g.statInterval.Store(g.interval.Milliseconds())
}

func (g *Game) collision(head core.Point) (string, bool) {
	switch {
	case !g.grid.InBounds(head):
		return parameter.DeathCauseWall, true
	case g.grid.Cell(head) == world.CellObstacle:
		return parameter.DeathCauseObstacle, true
	case g.snake.CollidesWithSelf():
		return parameter.DeathCauseSelf, true
	}
	return "", false
}

func (g *Game) gameOver(cause string) {
	g.snake.Die(cause)
	g.setPhase(PhaseOver)
	g.message = "The snake " + cause
	g.statDeath.Store(cause)

	g.emit(event.EventDeath, &event.DeathPayload{Cause: cause, Position: g.snake.Head()})
	rec := g.snake.Trajectory().Record(g.clock.Now())
	g.emit(event.EventGameOver, &event.GameOverPayload{
		Record:    rec,
		Abilities: g.policy.UnlockedAbilities(),
		Score:     max(0, rec.MaxLength-g.cfg.Snake.InitialLength),
	})
}

func (g *Game) consumeFood(head core.Point) {
	f, ok := g.grid.RemoveFood(head)
	if !ok {
		return
	}

	g.foodEaten++
	g.statFood.Add(1)
	g.snake.Grow(f.Growth)
	g.emit(event.EventFoodConsumed, &event.FoodPayload{Food: f})
	g.emit(event.EventGrow, &event.GrowPayload{Amount: f.Growth, Length: g.snake.Len()})

	if f.Poisoned && f.Poison != nil {
		ap := poison.NewActive(*f.Poison)
		held := g.snake.ApplyPoison(ap)
		g.statPoisons.Add(1)
		g.message = fmt.Sprintf("%s: %s", f.Poison.Name, f.Poison.Description)
		g.emit(event.EventPoisoned, &event.PoisonedPayload{
			Kind:      ap.Kind,
			Intensity: ap.Intensity,
			Refreshed: held != nil && held != ap,
		})
	}

	g.spawnFood()
}

// topUpFood fills the board to the configured count; a full grid stops it
func (g *Game) topUpFood() {
	for g.grid.FoodCount() < g.cfg.Spawn.FoodCount {
		if !g.spawnFood() {
			return
		}
	}
}

func (g *Game) spawnFood() bool {
	if g.grid.FoodCount() >= g.cfg.Spawn.FoodCount {
		return false
	}
	f, ok := g.spawner.Spawn(g.grid, g.snake.Occupies)
	if !ok {
		return false
	}
	g.emit(event.EventFoodSpawned, &event.FoodPayload{Food: f})
	return true
}

func (g *Game) evolveWorld() {
	traj := g.snake.Trajectory()
	ctx := world.EvolutionContext{
		PoisonsTaken: traj.PoisonsTaken(),
		TotalMoves:   traj.TotalMoves(),
	}
	g.statRisk.Set(world.RiskPreference(ctx.PoisonsTaken, ctx.TotalMoves))
	if !g.cfg.World.Adaptive {
		return
	}

	prevStyle := g.grid.Style()
	ch := g.grid.Evolve(ctx)
	if ch.DifficultyChanged {
		g.statDifficulty.Set(ch.Difficulty)
		g.emit(event.EventDifficultyChanged, &event.DifficultyChangedPayload{
			Difficulty:     ch.Difficulty,
			RiskPreference: ch.RiskPreference,
		})
	}
	if ch.StyleChanged {
		g.statStyle.Store(ch.Style.String())
		g.emit(event.EventStyleChanged, &event.StyleChangedPayload{From: prevStyle, To: ch.Style})
	}
}

// ===== EVENTS =====

func (g *Game) emit(typ event.EventType, payload any) {
	g.queue.Push(event.GameEvent{
		Type:      typ,
		Payload:   payload,
		Tick:      g.tick,
		Timestamp: g.clock.Now(),
	})
	g.statEvents.Add(1)
}

// dispatch delivers queued events with the post-mutation snapshot
// Serialized so the queue keeps a single consumer
func (g *Game) dispatch(snap Snapshot) {
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()
	g.router.DispatchAll(snap)
}
