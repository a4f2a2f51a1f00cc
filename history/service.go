package history

import (
	"github.com/lixenwraith/snake-poison/config"
)

// Service owns the Store for the service hub
// A disabled history keeps an in-memory store so subscribers never see nil
type Service struct {
	cfg   config.HistoryConfig
	store *Store
}

func NewService(cfg config.HistoryConfig) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Name() string { return "history" }

func (s *Service) Dependencies() []string { return nil }

// Init loads the archive; unreadable files start fresh and never fail
func (s *Service) Init() error {
	path := s.cfg.Path
	if !s.cfg.Enabled {
		path = ""
	}
	s.store = Open(path)
	return nil
}

func (s *Service) Start() error { return nil }

// Stop flushes the archive
func (s *Service) Stop() error {
	if s.store == nil {
		return nil
	}
	return s.store.Save()
}

// Store returns the loaded store, nil before Init
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) Handler() *Handler {
	return NewHandler(s.store)
}
