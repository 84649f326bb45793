package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ViewerIDHeader = "X-Viewer-ID"

// EnsureViewerID stores the caller's viewer id in Locals("viewerID"). Clients
// that do not send one get a fresh id echoed back in the response header.
func EnsureViewerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if viewerID is already set
		if c.Locals("viewerID") != nil {
			return c.Next()
		}

		// Check header first
		viewerID := c.Get(ViewerIDHeader)
		if viewerID == "" {
			viewerID = c.Query("viewerId")
		}
		if viewerID == "" {
			viewerID = uuid.New().String()
		}

		c.Set(ViewerIDHeader, viewerID)
		c.Locals("viewerID", viewerID)
		return c.Next()
	}
}
