package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "checkers-server/internal/api/http"
	"checkers-server/internal/api/ws"
	"checkers-server/internal/config"
	"checkers-server/internal/obslog"
	"checkers-server/internal/room"
	"checkers-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Checkers Session Server
// @version 1.0
// @description Two-player checkers over WebSocket, with a few HTTP diagnostics (Go + Gin)
// @BasePath /
func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkers-server",
		Usage: "serve two-player checkers rooms over WebSocket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file (overrides CHECKERS_CONFIG)"},
			&cli.StringFlag{Name: "addr", Usage: "listen address, e.g. :3001"},
			&cli.DurationFlag{Name: "room-ttl", Usage: "remove rooms older than this"},
			&cli.DurationFlag{Name: "sweep-interval", Usage: "how often to look for expired rooms"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "console or json"},
		},
		Action: run,
	}
}

// applyFlags overlays only the flags given on the command line.
func applyFlags(cfg *config.Config, cmd *cli.Command) {
	if cmd.IsSet("addr") {
		cfg.HTTPAddr = cmd.String("addr")
	}
	if cmd.IsSet("room-ttl") {
		cfg.RoomTTL = cmd.Duration("room-ttl")
	}
	if cmd.IsSet("sweep-interval") {
		cfg.SweepInterval = cmd.Duration("sweep-interval")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadFrom(cmd.String("config"))
	if err != nil {
		return err
	}
	applyFlags(&cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := obslog.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()
	if cfg.AllowAllOrigins() {
		log.Warn("cors_allow_all", zap.String("hint", "set ALLOWED_ORIGINS in production"))
	}

	gin.SetMode(gin.ReleaseMode)

	mem := store.NewMemoryStore()
	hub := ws.NewHub(log.Named("ws"), cfg.AllowedOrigins)
	rm := room.NewManager(mem, hub,
		room.WithLogger(log.Named("room")),
		room.WithExpiry(cfg.RoomTTL, cfg.SweepInterval),
	)
	hub.SetRoomManager(rm)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go rm.Run(ctx)

	router := httpapi.NewRouter(rm, hub, cfg, log.Named("http"))
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewHandler(router, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.Duration("room_ttl", cfg.RoomTTL),
			zap.Duration("sweep_interval", cfg.SweepInterval))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
