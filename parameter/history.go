package parameter

// History archive
const (
	HistoryFileName   = "snake_poison_history.msgpack"
	HistoryVersion    = "1.0.0"
	HistoryMaxStories = 100
)
