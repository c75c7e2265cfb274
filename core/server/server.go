package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"friendsync-api/core/config"
	"friendsync-api/core/logger"
	"friendsync-api/modules/calendar"
	"friendsync-api/modules/event"
	"friendsync-api/modules/friend"
	"friendsync-api/modules/idea"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Run loads configuration, wires the modules and serves HTTP until the
// process receives an interrupt.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.LogLevel)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	friendSvc := friend.Init(e)
	eventSvc := event.Init(e, friendSvc)
	calendar.Init(e, eventSvc, friendSvc)
	ideaSvc := idea.Init(e, friendSvc)

	if cfg.App.SeedDemoData {
		seedDemoData(context.Background(), friendSvc, eventSvc, ideaSvc, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server:Run:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:StartError", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Server:Run:ShuttingDown")
	return e.Shutdown(shutdownCtx)
}
