package service

import (
	"time"

	"github.com/VladPetriv/currency_bot/internal/currency"
)

// Stores represents all stores.
type Stores struct {
	Session  SessionStore
	Throttle ThrottleStore
}

// Session is the per-chat state kept between messages.
type Session struct {
	ChatID    int64
	Rates     *currency.RateCache
	CreatedAt time.Time
}

// SessionStore provides functionality for work with per-chat sessions.
type SessionStore interface {
	// GetOrCreate returns the session of the chat, creating an empty one on first use.
	GetOrCreate(chatID int64) *Session
	// Count returns the number of known sessions.
	Count() int
}

// ThrottleStore remembers recent hits of throttled keys.
type ThrottleStore interface {
	// Hit records a hit of key and reports whether the previous hit happened within window.
	// A throttled hit restarts the window.
	Hit(key string, window time.Duration) (bool, error)
}
