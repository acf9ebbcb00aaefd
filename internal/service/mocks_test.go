package service

import (
	"context"
	"sync"
	"time"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/models"
)

type fetchDelegate func(context.Context) (*models.RateResponse, error)

type mockFetcher struct {
	mu      sync.Mutex
	calls   int
	fetchFn fetchDelegate
}

func (m *mockFetcher) FetchRates(ctx context.Context) (*models.RateResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}

	return nil, nil
}

func (m *mockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

type mockMessenger struct {
	mu      sync.Mutex
	sent    []SendMessageOptions
	sendErr error
	updates []Message
}

func (m *mockMessenger) ReadUpdates(result chan Message, _ chan error) {
	for _, update := range m.updates {
		result <- update
	}
}

func (m *mockMessenger) SendMessage(opts SendMessageOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return m.sendErr
	}

	m.sent = append(m.sent, opts)
	return nil
}

func (m *mockMessenger) Close() error {
	return nil
}

func (m *mockMessenger) Sent() []SendMessageOptions {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]SendMessageOptions(nil), m.sent...)
}

type mockMessage struct {
	updateID   int
	chatID     int64
	messageID  int
	text       string
	replyText  string
	senderName string
}

func (m mockMessage) GetUpdateID() int      { return m.updateID }
func (m mockMessage) GetChatID() int64      { return m.chatID }
func (m mockMessage) GetMessageID() int     { return m.messageID }
func (m mockMessage) GetText() string       { return m.text }
func (m mockMessage) GetReplyText() string  { return m.replyText }
func (m mockMessage) GetSenderName() string { return m.senderName }

type mockSessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[int64]*Session)}
}

func (m *mockSessionStore) GetOrCreate(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[chatID]
	if !ok {
		session = &Session{ChatID: chatID, Rates: currency.NewRateCache(), CreatedAt: time.Now()}
		m.sessions[chatID] = session
	}

	return session
}

func (m *mockSessionStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

type mockThrottleStore struct {
	mu   sync.Mutex
	hits map[string]int
	err  error
}

func newMockThrottleStore() *mockThrottleStore {
	return &mockThrottleStore{hits: make(map[string]int)}
}

func (m *mockThrottleStore) Hit(key string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return false, m.err
	}

	m.hits[key]++
	return m.hits[key] > 1, nil
}

func successfulRates(rates map[string]float64) fetchDelegate {
	return func(context.Context) (*models.RateResponse, error) {
		return &models.RateResponse{
			Success:   true,
			Timestamp: 1709294400,
			Base:      "USD",
			Date:      "2024-03-01",
			Rates:     rates,
		}, nil
	}
}
