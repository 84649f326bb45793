package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/chessboard-backend/internal/config"
	"github.com/benbeisheim/chessboard-backend/internal/controller"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/benbeisheim/chessboard-backend/internal/view"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.Level()
	log.SetLevel(level)

	// Initialize services
	sessionManager := service.NewSessionManager(service.ManagerOptions{
		DefaultTheme:  view.Theme{Dark: cfg.DarkMode},
		Assets:        view.NewPieceAssets(cfg.PieceAssets),
		SessionTTL:    cfg.SessionTTL,
		SweepInterval: cfg.SweepInterval,
	})
	defer sessionManager.Close()
	boardService := service.NewBoardService(sessionManager)

	app := controller.NewApp(boardService, cfg.AllowOrigins)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("HTTP listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Errorf("listen: %v", err)
	}
}
