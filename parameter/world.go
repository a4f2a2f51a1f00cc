package parameter

// World adaptation
const (
	WorldInitialDifficulty = 0.5

	// Risk preference above High raises difficulty, below Low lowers it
	WorldRiskHigh       = 0.7
	WorldRiskLow        = 0.3
	WorldDifficultyStep = 0.05

	// WorldRiskScale maps poisons-per-move to the [0,1] risk scale
	WorldRiskScale = 10.0

	// WorldNeutralRisk is reported before the first move
	WorldNeutralRisk = 0.5

	// WorldStyleThreshold is the lifetime poison count that flips Minimal to Cyber
	WorldStyleThreshold = 10
)
