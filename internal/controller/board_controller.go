package controller

import (
	"bytes"
	_ "embed"
	"errors"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/benbeisheim/chessboard-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

//go:embed static/index.html
var indexPage []byte

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

type createBoardRequest struct {
	FEN string `json:"fen"`
}

func (bc *BoardController) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(indexPage)
}

func (bc *BoardController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	var req createBoardRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	boardID, err := bc.boardService.CreateBoard(req.FEN)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Board created",
		"boardId": boardID,
	})
}

func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	v, err := bc.boardService.GetView(c.Params("boardId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(v)
}

func (bc *BoardController) GetBoardSVG(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := bc.boardService.WriteSVG(c.Params("boardId"), &buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

func (bc *BoardController) Gesture(c *fiber.Ctx) error {
	var req ws.GesturePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	v, err := bc.boardService.HandleGesture(c.Params("boardId"), req.Gesture, req.Row, req.Col)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(v)
}

func (bc *BoardController) SetTheme(c *fiber.Ctx) error {
	// An empty body or a body without "dark" toggles.
	var req ws.ThemePayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	v, err := bc.boardService.ApplyTheme(c.Params("boardId"), req.Dark)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(v)
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrUnknownGesture),
		errors.Is(err, model.ErrInvalidGestureTarget),
		errors.Is(err, model.ErrMalformedSnapshot):
		status = fiber.StatusBadRequest
	default:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
