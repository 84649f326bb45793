package service

import (
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/chessboard-backend/internal/rules"
	"github.com/benbeisheim/chessboard-backend/internal/view"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrBoardNotFound = errors.New("board not found")

type ManagerOptions struct {
	DefaultTheme  view.Theme
	Assets        view.PieceAssets
	SessionTTL    time.Duration // 0 disables expiry
	SweepInterval time.Duration
}

type SessionManager struct {
	sessions map[string]*Session
	opts     ManagerOptions
	mu       sync.RWMutex
	done     chan struct{}
	stopOnce sync.Once
}

func NewSessionManager(opts ManagerOptions) *SessionManager {
	if opts.Assets == nil {
		opts.Assets = view.NewPieceAssets(view.DefaultPieceAssetBase)
	}
	sm := &SessionManager{
		sessions: make(map[string]*Session),
		opts:     opts,
		done:     make(chan struct{}),
	}

	// Start idle sweeper
	if opts.SessionTTL > 0 && opts.SweepInterval > 0 {
		go sm.sweepIdle()
	}

	return sm
}

// CreateSession starts a board on the given engine.
func (sm *SessionManager) CreateSession(engine rules.Engine) (*Session, error) {
	controller, err := NewBoardController(rules.NewAdapter(engine))
	if err != nil {
		return nil, err
	}

	session := NewSession(uuid.New().String(), controller, sm.opts.DefaultTheme, sm.opts.Assets)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[session.ID] = session
	log.Infof("created board %s", session.ID)
	return session, nil
}

func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[id]
	if !exists {
		return nil, ErrBoardNotFound
	}
	return session, nil
}

func (sm *SessionManager) RemoveSession(id string) {
	sm.mu.Lock()
	session, exists := sm.sessions[id]
	delete(sm.sessions, id)
	sm.mu.Unlock()

	if exists {
		session.Close()
		log.Infof("removed board %s", id)
	}
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Close stops the sweeper and drops every session.
func (sm *SessionManager) Close() {
	sm.stopOnce.Do(func() { close(sm.done) })

	sm.mu.Lock()
	sessions := sm.sessions
	sm.sessions = make(map[string]*Session)
	sm.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (sm *SessionManager) sweepIdle() {
	ticker := time.NewTicker(sm.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sm.done:
			return
		case <-ticker.C:
			sm.expireIdle()
		}
	}
}

// expireIdle removes sessions idle longer than the TTL.
func (sm *SessionManager) expireIdle() int {
	sm.mu.RLock()
	var stale []string
	for id, s := range sm.sessions {
		if s.IdleFor() > sm.opts.SessionTTL {
			stale = append(stale, id)
		}
	}
	sm.mu.RUnlock()

	for _, id := range stale {
		sm.RemoveSession(id)
	}
	return len(stale)
}
