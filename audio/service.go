package audio

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/snake-poison/config"
)

// Service wraps SoundManager for the service hub
// A missing audio backend disables the service instead of failing Init
type Service struct {
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService builds the audio service; muted starts the speaker silenced
func NewService(cfg config.AudioConfig, muted bool) *Service {
	sm := NewSoundManager(cfg)
	if muted {
		sm.SetMuted(true)
	}
	return &Service{manager: sm}
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Dependencies() []string { return nil }

func (s *Service) Init() error {
	if err := s.manager.Initialize(); err != nil {
		if !errors.Is(err, ErrAudioDisabled) {
			log.Printf("audio: %v, continuing without sound", err)
		}
		s.disabled.Store(true)
	}
	return nil
}

func (s *Service) Start() error { return nil }

func (s *Service) Stop() error {
	s.manager.Cleanup()
	return nil
}

// IsDisabled reports whether no speaker is available
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

func (s *Service) Manager() *SoundManager {
	return s.manager
}

// Handler returns the event subscriber that plays effects through this service
func (s *Service) Handler() *Handler {
	return NewHandler(s.manager)
}
