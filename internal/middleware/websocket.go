package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the board and viewer are known before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// First, check if this is a WebSocket upgrade request
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		if c.Params("boardId") == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "board ID is required",
			})
		}

		// Set by EnsureViewerID
		if _, ok := c.Locals("viewerID").(string); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "viewer ID is required",
			})
		}

		return c.Next()
	}
}
