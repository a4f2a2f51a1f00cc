// Package history persists finished lives across sessions in a msgpack archive
package history

import (
	"maps"
	"slices"
	"time"

	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/snake"
)

// Stats are cumulative over every recorded game
type Stats struct {
	GamesPlayed  int            `msgpack:"games_played"`
	Deaths       int            `msgpack:"deaths"`
	MaxLength    int            `msgpack:"max_length"`
	BestScore    int            `msgpack:"best_score"`
	TotalMoves   int            `msgpack:"total_moves"`
	TotalPoisons int            `msgpack:"total_poisons"`
	FoodEaten    int            `msgpack:"food_eaten"`
	PlayTime     time.Duration  `msgpack:"play_time"`
	PoisonStats  map[string]int `msgpack:"poison_stats"`
	DeathCauses  map[string]int `msgpack:"death_causes"`
}

// Story is one archived life
type Story struct {
	At         time.Time     `msgpack:"at"`
	Text       string        `msgpack:"text"`
	Score      int           `msgpack:"score"`
	LifeSpan   time.Duration `msgpack:"life_span"`
	MaxLength  int           `msgpack:"max_length"`
	DeathCause string        `msgpack:"death_cause"`
}

// Archive is the on-disk document
// Stories are oldest first and capped at parameter.HistoryMaxStories
type Archive struct {
	Version   string   `msgpack:"version"`
	Stats     Stats    `msgpack:"stats"`
	Stories   []Story  `msgpack:"stories"`
	Abilities []string `msgpack:"abilities"`
}

func newArchive() *Archive {
	return &Archive{
		Version: parameter.HistoryVersion,
		Stats: Stats{
			PoisonStats: make(map[string]int),
			DeathCauses: make(map[string]int),
		},
	}
}

// normalize repairs nil maps and oversized story lists from older or hand-edited files
func (a *Archive) normalize() {
	if a.Version == "" {
		a.Version = parameter.HistoryVersion
	}
	if a.Stats.PoisonStats == nil {
		a.Stats.PoisonStats = make(map[string]int)
	}
	if a.Stats.DeathCauses == nil {
		a.Stats.DeathCauses = make(map[string]int)
	}
	if n := len(a.Stories); n > parameter.HistoryMaxStories {
		a.Stories = slices.Clone(a.Stories[n-parameter.HistoryMaxStories:])
	}
}

// addGame folds one finished life into the stats and story list
func (a *Archive) addGame(rec snake.Record, score int, at time.Time) {
	s := &a.Stats
	s.GamesPlayed++
	if rec.Dead {
		s.Deaths++
		s.DeathCauses[rec.DeathCause]++
	}
	s.MaxLength = max(s.MaxLength, rec.MaxLength)
	s.BestScore = max(s.BestScore, score)
	s.TotalMoves += rec.TotalMoves
	s.TotalPoisons += rec.PoisonsTaken
	s.PlayTime += rec.LifeSpan
	for k, n := range rec.PoisonCounts {
		s.PoisonStats[k] += n
	}

	a.Stories = append(a.Stories, Story{
		At:         at,
		Text:       rec.Story,
		Score:      score,
		LifeSpan:   rec.LifeSpan,
		MaxLength:  rec.MaxLength,
		DeathCause: rec.DeathCause,
	})
	if n := len(a.Stories); n > parameter.HistoryMaxStories {
		a.Stories = slices.Delete(a.Stories, 0, n-parameter.HistoryMaxStories)
	}
}

// addAbility reports whether name was new
func (a *Archive) addAbility(name string) bool {
	if slices.Contains(a.Abilities, name) {
		return false
	}
	a.Abilities = append(a.Abilities, name)
	return true
}

func (a *Archive) clone() Archive {
	c := *a
	c.Stats.PoisonStats = maps.Clone(a.Stats.PoisonStats)
	c.Stats.DeathCauses = maps.Clone(a.Stats.DeathCauses)
	c.Stories = slices.Clone(a.Stories)
	c.Abilities = slices.Clone(a.Abilities)
	return c
}
