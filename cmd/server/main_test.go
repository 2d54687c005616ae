package main

import (
	"context"
	"testing"
	"time"

	"checkers-server/internal/config"

	"github.com/urfave/cli/v3"
)

func TestApplyFlagsOnlyTouchesGivenFlags(t *testing.T) {
	cmd := newCommand()
	var cfg config.Config
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg = config.Default()
		applyFlags(&cfg, c)
		return nil
	}

	args := []string{"checkers-server", "--addr", ":9000", "--room-ttl", "1h", "--log-format", "json"}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if cfg.HTTPAddr != ":9000" || cfg.RoomTTL != time.Hour || cfg.LogFormat != "json" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	def := config.Default()
	if cfg.SweepInterval != def.SweepInterval || cfg.LogLevel != def.LogLevel {
		t.Errorf("unset flags should keep config values: %+v", cfg)
	}
}
