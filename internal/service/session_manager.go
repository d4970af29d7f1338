package service

import (
	"context"
	"sync"
	"time"
)

// SessionManager hands out one SessionService per table, created lazily on
// first use. Cart state is volatile: a session lives until Close and is gone
// after a restart.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*SessionService

	dispatcher *Dispatcher
	feedback   FeedbackServiceInterface
	menu       MenuServiceInterface
	statsSink  TableStatsSink
}

func NewSessionManager(dispatcher *Dispatcher, feedback FeedbackServiceInterface, menu MenuServiceInterface, statsSink TableStatsSink) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*SessionService),
		dispatcher: dispatcher,
		feedback:   feedback,
		menu:       menu,
		statsSink:  statsSink,
	}
}

// Session returns the live session for the table, starting one if needed.
func (m *SessionManager) Session(table string) *SessionService {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[table]; ok {
		return session
	}

	session := NewSessionService(
		table,
		NewCartService(),
		m.dispatcher,
		NewAnalyticsService(table, m.statsSink, time.Now()),
		m.feedback,
		m.menu,
	)
	m.sessions[table] = session
	return session
}

// Close flushes and discards the table's session, if any.
func (m *SessionManager) Close(ctx context.Context, table string) {
	m.mu.Lock()
	session, ok := m.sessions[table]
	if ok {
		delete(m.sessions, table)
	}
	m.mu.Unlock()

	if ok {
		session.Close(ctx)
	}
}

// CloseAll flushes every live session; called on shutdown.
func (m *SessionManager) CloseAll(ctx context.Context) {
	m.mu.Lock()
	sessions := make([]*SessionService, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*SessionService)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close(ctx)
	}
}
