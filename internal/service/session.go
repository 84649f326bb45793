package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/view"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections watching a specific board
type SessionConnections struct {
	connections map[string]Conn // viewerID -> connection
	mu          sync.RWMutex
}

func NewSessionConnections() *SessionConnections {
	return &SessionConnections{
		connections: make(map[string]Conn),
	}
}

// Session is one interactive board and its watchers. Every gesture runs
// under mu to completion before the next one starts, and every render reads
// under the same lock.
type Session struct {
	ID          string
	mu          sync.Mutex
	controller  *BoardController
	theme       view.Theme
	assets      view.PieceAssets
	lastActive  time.Time
	now         func() time.Time
	connections *SessionConnections
}

func NewSession(id string, controller *BoardController, theme view.Theme, assets view.PieceAssets) *Session {
	return &Session{
		ID:          id,
		controller:  controller,
		theme:       theme,
		assets:      assets,
		lastActive:  time.Now(),
		now:         time.Now,
		connections: NewSessionConnections(),
	}
}

// HandleGesture feeds one gesture to the state machine and returns the view
// as it stands afterwards. Coordinates are checked here because they come
// from the network; the state machine treats bad ones as a bug.
func (s *Session) HandleGesture(g Gesture, row, col int) (view.BoardView, error) {
	if g != GestureRelease && !model.InBounds(row, col) {
		return view.BoardView{}, fmt.Errorf("%w: row %d col %d", model.ErrInvalidGestureTarget, row, col)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.controller.Handle(g, row, col)
	s.touch()

	v := s.render()
	if g != GestureDragOver {
		s.broadcast(v)
	}
	return v, nil
}

func (s *Session) SetTheme(theme view.Theme) view.BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyTheme(theme)
}

// ToggleTheme flips the theme it reads under the same lock, so concurrent
// toggles never collapse into one.
func (s *Session) ToggleTheme() view.BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyTheme(s.theme.Toggled())
}

func (s *Session) applyTheme(theme view.Theme) view.BoardView {
	s.theme = theme
	s.touch()
	v := s.render()
	s.broadcast(v)
	return v
}

func (s *Session) View() view.BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

func (s *Session) WriteSVG(w io.Writer) {
	view.RenderSVG(w, s.View())
}

// IdleFor reports how long ago the last gesture or theme change happened.
func (s *Session) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.lastActive)
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func (s *Session) render() view.BoardView {
	return view.Build(s.controller, s.theme, s.assets)
}

func (s *Session) RegisterConnection(viewerID string, conn Conn) error {
	s.connections.mu.Lock()
	if _, exists := s.connections.connections[viewerID]; exists {
		// Keep the healthy connection and turn the new one away
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return fmt.Errorf("viewer %s already connected to board %s", viewerID, s.ID)
	}
	s.connections.connections[viewerID] = conn
	s.connections.mu.Unlock()
	log.Debugf("registered viewer %s on board %s", viewerID, s.ID)

	// Send initial state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send(viewerID, conn, ws.MessageTypeView, viewFrame(s.render()))
}

// UnregisterConnection removes conn only if it is still the viewer's current
// connection.
func (s *Session) UnregisterConnection(viewerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[viewerID]; exists && current == conn {
		delete(s.connections.connections, viewerID)
		log.Debugf("unregistered viewer %s from board %s", viewerID, s.ID)
	}
}

// SendError reports a rejected message to a single viewer.
func (s *Session) SendError(viewerID string, msg string) {
	s.connections.mu.RLock()
	conn, ok := s.connections.connections[viewerID]
	s.connections.mu.RUnlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.send(viewerID, conn, ws.MessageTypeError, ws.ErrorPayload{Error: msg}); err != nil {
		log.Warnf("failed to send error to viewer %s: %v", viewerID, err)
	}
}

// Close drops every watcher.
func (s *Session) Close() {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for viewerID, conn := range s.connections.connections {
		conn.Close()
		delete(s.connections.connections, viewerID)
	}
}

// broadcast must be called with mu held so frames leave in gesture order.
func (s *Session) broadcast(v view.BoardView) {
	s.connections.mu.RLock()
	active := make(map[string]Conn, len(s.connections.connections))
	for viewerID, conn := range s.connections.connections {
		active[viewerID] = conn
	}
	s.connections.mu.RUnlock()
	if len(active) == 0 {
		return
	}

	frame := viewFrame(v)
	for viewerID, conn := range active {
		if err := s.send(viewerID, conn, ws.MessageTypeView, frame); err != nil {
			log.Warnf("dropping viewer %s on board %s: %v", viewerID, s.ID, err)
			s.UnregisterConnection(viewerID, conn)
		}
	}
}

// viewFrame carries the SVG drawn from v so a watcher never has to fetch a
// board that may already be newer or older than the view it belongs to.
func viewFrame(v view.BoardView) ws.ViewPayload {
	var buf bytes.Buffer
	view.RenderSVG(&buf, v)
	return ws.ViewPayload{BoardView: v, SVG: buf.String()}
}

func (s *Session) send(viewerID string, conn Conn, t ws.MessageType, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s for viewer %s: %w", t, viewerID, err)
	}
	return conn.WriteJSON(ws.Message{Type: t, Payload: raw})
}
