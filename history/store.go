package history

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/snake-poison/evolution"
	"github.com/lixenwraith/snake-poison/snake"
)

// Store owns the archive file
// An empty path keeps the archive in memory only
type Store struct {
	mu      sync.Mutex
	path    string
	archive *Archive
	now     func() time.Time
}

// Open loads the archive at path
// Missing or malformed data yields a fresh archive, never an error
func Open(path string) *Store {
	s := &Store{path: path, archive: newArchive(), now: time.Now}
	if path == "" {
		return s
	}

	a, err := load(path)
	switch {
	case err == nil:
		s.archive = a
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("history: no archive at %s, starting fresh", path)
	default:
		log.Printf("history: %v, starting fresh", err)
	}
	return s
}

func load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a := newArchive()
	if err := msgpack.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	a.normalize()
	return a, nil
}

// Path returns the backing file, empty for an in-memory store
func (s *Store) Path() string { return s.path }

// RecordGame folds a finished life into the archive
func (s *Store) RecordGame(rec snake.Record, abilities []evolution.Ability, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := rec.Death
	if at.IsZero() {
		at = s.now()
	}
	s.archive.addGame(rec, score, at)
	for _, a := range abilities {
		s.archive.addAbility(a.String())
	}
}

// AddAbility reports whether the ability was new to the archive
func (s *Store) AddAbility(a evolution.Ability) bool {
	if !a.Concrete() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive.addAbility(a.String())
}

func (s *Store) RecordFood() {
	s.mu.Lock()
	s.archive.Stats.FoodEaten++
	s.mu.Unlock()
}

// Abilities returns the archived abilities, skipping names this build does not know
func (s *Store) Abilities() []evolution.Ability {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]evolution.Ability, 0, len(s.archive.Abilities))
	for _, name := range s.archive.Abilities {
		if a, ok := evolution.ParseAbility(name); ok && a.Concrete() {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive.clone().Stats
}

// Stories returns archived lives, oldest first
func (s *Store) Stories() []Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive.clone().Stories
}

// Snapshot returns a deep copy of the whole archive
func (s *Store) Snapshot() Archive {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archive.clone()
}

// Save writes the archive through a temp file and rename
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	data, err := msgpack.Marshal(s.archive)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
