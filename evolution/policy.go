// Package evolution advances active poisons over game time and resolves the
// abilities unlocked by completed evolution paths.
package evolution

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/snake-poison/parameter"
	"github.com/lixenwraith/snake-poison/poison"
	"github.com/lixenwraith/snake-poison/snake"
)

// Rand is the subset of golang.org/x/exp/rand used for the Random unlock draw
type Rand interface {
	Intn(n int) int
}

// Result describes what one poison instance did during processing
type Result struct {
	Success  bool
	Kind     poison.Kind
	Stage    int // Stage reached, 1..3; 4 when Terminal
	Name     string
	Terminal bool
	Unlocked Ability // None unless a new ability was added
	Expired  bool
	Message  string
}

// Policy owns the unlocked ability set and the stage clock
// Not safe for concurrent use; the engine serializes access
type Policy struct {
	rng           Rand
	stageInterval time.Duration
	unlocked      []Ability
}

// NewPolicy creates a policy; a non-positive interval falls back to the default
func NewPolicy(rng Rand, stageInterval time.Duration) *Policy {
	if stageInterval <= 0 {
		stageInterval = parameter.EvolutionStageInterval
	}
	return &Policy{
		rng:           rng,
		stageInterval: stageInterval,
	}
}

// StageInterval returns the game time between Evolving stage advances
func (p *Policy) StageInterval() time.Duration {
	return p.stageInterval
}

// Tick ages every active poison on s by dt
// Timed instances expire and are removed; Evolving instances advance one stage
// per elapsed interval. Works on a snapshot of the poison list
func (p *Policy) Tick(s *snake.Snake, dt time.Duration) []Result {
	if s == nil || !s.Alive() || dt <= 0 {
		return nil
	}

	var results []Result
	for _, ap := range s.ActivePoisons() {
		if ap.Kind == poison.Evolving {
			ap.StageElapsed += dt
			for ap.StageElapsed >= p.stageInterval {
				ap.StageElapsed -= p.stageInterval
				r := p.Process(s, ap)
				results = append(results, r)
				if r.Terminal {
					break
				}
			}
			continue
		}

		if ap.Permanent {
			continue
		}
		ap.Remaining -= dt
		if ap.Remaining <= 0 {
			s.RemovePoison(ap)
			results = append(results, Result{
				Success: true,
				Kind:    ap.Kind,
				Stage:   ap.Stage,
				Expired: true,
				Message: fmt.Sprintf("%s wore off", ap.Kind),
			})
		}
	}
	return results
}

// Process runs one evolution step for ap
// Evolving advances a stage; past the final stage the instance is removed and
// its unlock resolved. Other kinds report their current narrative unchanged
func (p *Policy) Process(s *snake.Snake, ap *poison.Active) Result {
	if ap == nil {
		return Result{}
	}
	path, ok := PathFor(ap.Kind)
	if !ok {
		return Result{Kind: ap.Kind}
	}

	if ap.Kind != poison.Evolving {
		st := path.At(ap.Stage)
		return Result{
			Success: true,
			Kind:    ap.Kind,
			Stage:   ap.Stage,
			Name:    st.Name,
			Message: fmt.Sprintf("%s: %s", st.Name, st.Effect),
		}
	}

	ap.Stage++
	if ap.Stage > parameter.EvolutionFinalStage {
		if s != nil {
			s.RemovePoison(ap)
		}
		final := path.Final()
		unlocked := p.resolve(final.Unlocks)
		r := Result{
			Success:  true,
			Kind:     ap.Kind,
			Stage:    ap.Stage,
			Name:     final.Name,
			Terminal: true,
			Message:  "the evolution completes",
		}
		if p.Unlock(unlocked) {
			r.Unlocked = unlocked
			r.Message = fmt.Sprintf("the evolution completes: %s unlocked", unlocked)
		}
		return r
	}

	st := path.At(ap.Stage)
	msg := fmt.Sprintf("%s: %s", st.Name, st.Effect)
	if s != nil {
		s.RecordEvolution(ap.Kind, ap.Stage, msg)
	}
	return Result{
		Success: true,
		Kind:    ap.Kind,
		Stage:   ap.Stage,
		Name:    st.Name,
		Message: msg,
	}
}

func (p *Policy) resolve(a Ability) Ability {
	if a != Random {
		return a
	}
	if p.rng == nil {
		return randomPool[0]
	}
	return randomPool[p.rng.Intn(len(randomPool))]
}

// Unlock adds a concrete ability; returns false when already held or not concrete
func (p *Policy) Unlock(a Ability) bool {
	if !a.Concrete() || slices.Contains(p.unlocked, a) {
		return false
	}
	p.unlocked = append(p.unlocked, a)
	return true
}

// HasAbility reports whether a is unlocked
func (p *Policy) HasAbility(a Ability) bool {
	return slices.Contains(p.unlocked, a)
}

// UnlockedAbilities returns the set in unlock order
func (p *Policy) UnlockedAbilities() []Ability {
	return slices.Clone(p.unlocked)
}

// Enlightened reports whether any ability has been unlocked
func (p *Policy) Enlightened() bool {
	return len(p.unlocked) > 0
}
