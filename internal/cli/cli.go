// Package cli wires the board services to cobra commands. All board logic
// lives in the core packages; the CLI validates form input, calls the
// service, and formats output.
package cli

import (
	"context"
	"fmt"

	"github.com/hypejab/triage/internal/app"
	"github.com/hypejab/triage/internal/config"
	"github.com/hypejab/triage/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
	ctx    context.Context
}

// NewCLI initializes the CLI: config, logging, storage, services, and a
// restored session if one was active.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	Init(cfg.Theme)

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// RequireUser returns the active user ID, or an error suitable for direct
// display when nobody is logged in.
func (c *CLI) RequireUser() (string, error) {
	userID := c.App.Session.CurrentUserID()
	if userID == "" {
		return "", fmt.Errorf("not logged in (run: triage login --email=<email>)")
	}
	return userID, nil
}
