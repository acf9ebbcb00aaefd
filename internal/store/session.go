package store

import (
	"sync"
	"time"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/service"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Session
}

var _ service.SessionStore = (*sessionStore)(nil)

// NewSession creates a new in-memory session store.
func NewSession() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*service.Session),
	}
}

func (s *sessionStore) GetOrCreate(chatID int64) *service.Session {
	s.mu.RLock()
	session, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok = s.sessions[chatID]
	if ok {
		return session
	}

	session = &service.Session{
		ChatID:    chatID,
		Rates:     currency.NewRateCache(),
		CreatedAt: time.Now(),
	}
	s.sessions[chatID] = session

	return session
}

func (s *sessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
