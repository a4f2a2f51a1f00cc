package parameter

import "time"

// Poison template durations
const (
	PerceptionDuration = 10 * time.Second
	ImpulsiveDuration  = 8 * time.Second
	MemoryDuration     = 15 * time.Second
)

// Poison template intensities
const (
	PoisonDefaultIntensity   = 0.5
	EvolvingDefaultIntensity = 0.3
)

// Evolution
const (
	// EvolutionStageInterval is the game time between Evolving stage advances
	EvolutionStageInterval = 3 * time.Second

	// EvolutionFinalStage is the last narrative stage; the next advance resolves the unlock
	EvolutionFinalStage = 3
)

// Impulsive jitter
const (
	// ImpulsiveJitterChance is scaled by poison intensity per tick
	ImpulsiveJitterChance = 0.3

	ImpulsiveMinInterval = 80 * time.Millisecond
	ImpulsiveMaxInterval = 200 * time.Millisecond
)
