package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chessboard-backend/internal/view"
)

// MessageType represents the different kinds of messages a board socket carries
type MessageType string

const (
	// client -> server
	MessageTypeGesture MessageType = "gesture"
	MessageTypeTheme   MessageType = "theme"
	// server -> client
	MessageTypeView  MessageType = "view"
	MessageTypeError MessageType = "error"
)

// Message is the envelope for every websocket frame
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GesturePayload is one pointer gesture on the board. Row and Col are
// required for every gesture except "release", which ignores them.
type GesturePayload struct {
	Gesture string `json:"gesture"`
	Row     *int   `json:"row"`
	Col     *int   `json:"col"`
}

// ThemePayload sets the theme. A missing dark flag toggles it.
type ThemePayload struct {
	Dark *bool `json:"dark"`
}

// ViewPayload is the view frame pushed to watchers, with the board already
// drawn from the same state.
type ViewPayload struct {
	view.BoardView
	SVG string `json:"svg"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
