package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	boardService *service.BoardService
}

func NewWebSocketController(boardService *service.BoardService) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID := c.Params("boardId")
	viewerID, _ := c.Locals("viewerID").(string)

	// Register this connection with the board; this also sends the first view
	if err := wsc.boardService.RegisterConnection(boardID, viewerID, c); err != nil {
		log.Warnf("failed to register viewer %s on board %s: %v", viewerID, boardID, err)
		c.Close()
		return
	}
	defer wsc.boardService.UnregisterConnection(boardID, viewerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("read error from viewer %s: %v", viewerID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.boardService.SendError(boardID, viewerID, "malformed message")
			continue
		}

		if err := wsc.handleMessage(boardID, msg); err != nil {
			log.Debugf("board %s: %v", boardID, err)
			wsc.boardService.SendError(boardID, viewerID, err.Error())
		}
	}
}

// Views go out through the session broadcast, so the handlers only report
// errors back.
func (wsc *WebSocketController) handleMessage(boardID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeGesture:
		var g ws.GesturePayload
		if err := json.Unmarshal(msg.Payload, &g); err != nil {
			return err
		}
		_, err := wsc.boardService.HandleGesture(boardID, g.Gesture, g.Row, g.Col)
		return err

	case ws.MessageTypeTheme:
		var t ws.ThemePayload
		if err := json.Unmarshal(msg.Payload, &t); err != nil {
			return err
		}
		_, err := wsc.boardService.ApplyTheme(boardID, t.Dark)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
