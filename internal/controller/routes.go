package controller

import (
	"github.com/benbeisheim/chessboard-backend/internal/middleware"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

// NewApp wires every route onto a fresh fiber app.
func NewApp(boardService *service.BoardService, allowOrigins string) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.ViewerIDHeader,
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: middleware.ViewerIDHeader,
	}))

	// Initialize controllers
	boardController := NewBoardController(boardService)
	wsController := NewWebSocketController(boardService)

	app.Get("/", boardController.Index)
	app.Get("/healthz", boardController.Health)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsureViewerID())
	app.Get("/ws/board/:boardId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureViewerID())

	boardRoutes := api.Group("/board")
	boardRoutes.Post("/", boardController.CreateBoard)
	boardRoutes.Get("/:boardId", boardController.GetBoard)
	boardRoutes.Get("/:boardId/svg", boardController.GetBoardSVG)
	boardRoutes.Post("/:boardId/gesture", boardController.Gesture)
	boardRoutes.Post("/:boardId/theme", boardController.SetTheme)

	return app
}
