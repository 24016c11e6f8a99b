package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/config"
	"github.com/akarev0/MultiCalendar/internal/coordinator"
	"github.com/akarev0/MultiCalendar/internal/handler"
	"github.com/akarev0/MultiCalendar/internal/middleware"
	"github.com/akarev0/MultiCalendar/internal/notification"
	"github.com/akarev0/MultiCalendar/internal/router"
	"github.com/akarev0/MultiCalendar/internal/scheduler"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	coord      *coordinator.Coordinator
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MultiCalendar",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initCalendars(); err != nil {
		return nil, fmt.Errorf("init calendars: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initCalendars() error {
	a.coord = coordinator.New(a.log)

	if err := a.coord.CreateCalendar(a.cfg.Calendar.Name, a.cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("create default calendar: %w", err)
	}
	if err := a.coord.Select(a.cfg.Calendar.Name); err != nil {
		return fmt.Errorf("select default calendar: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "default calendar ready",
		logger.String("name", a.cfg.Calendar.Name),
		logger.String("timezone", a.cfg.Calendar.Timezone),
	)

	return nil
}

func (a *App) initServices() error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.scheduler = scheduler.New(
		a.coord,
		n,
		a.cfg.Reminder.Interval,
		a.cfg.Reminder.Lookahead,
		a.log,
	)

	h := handler.NewHandler(a.coord)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
