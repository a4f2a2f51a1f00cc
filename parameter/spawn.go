package parameter

// Food spawn bands, one uniform draw per spawn
const (
	// SpawnNormalBelow: roll < this is Normal food
	SpawnNormalBelow = 0.60

	// SpawnSuspiciousBelow: roll < this (and >= NormalBelow) is Suspicious, otherwise Valuable
	SpawnSuspiciousBelow = 0.85

	// SpawnValuablePoisonChance is the chance a Valuable item carries the Evolving poison
	SpawnValuablePoisonChance = 0.5

	// SpawnFoodCount is the number of food items kept on the board
	SpawnFoodCount = 1
)

// Growth per food type
const (
	GrowthNormal     = 1
	GrowthSuspicious = 2
	GrowthValuable   = 3
)
