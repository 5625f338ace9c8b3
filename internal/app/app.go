package app

import (
	"context"

	"github.com/hypejab/triage/internal/auth"
	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/config"
	kanbanservice "github.com/hypejab/triage/internal/services/kanban"
	"github.com/hypejab/triage/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Storage layer
	kv     *storage.SQLiteKV
	Bridge *storage.Bridge

	// Canonical board state
	Store *board.Store

	// Service layer (business logic)
	Board   kanbanservice.Service
	Session *auth.Session
}

// New creates a new App with all services initialized and a previously
// active session restored. This is the single entry point for creating the
// application container.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	kv, err := storage.OpenSQLiteKV(ctx, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	store := board.NewStore()
	bridge := storage.NewBridge(kv, cfg.Namespace, store)
	session := auth.NewSession(kv, cfg.Namespace, bridge)
	session.Restore()

	return &App{
		kv:      kv,
		Bridge:  bridge,
		Store:   store,
		Board:   kanbanservice.NewService(store),
		Session: session,
	}, nil
}

// NewInMemory wires the container around an in-memory KV store. Used by
// tests and throwaway sessions; nothing survives Close.
func NewInMemory(namespace string) *App {
	kv := storage.NewMemoryKV()
	store := board.NewStore()
	bridge := storage.NewBridge(kv, namespace, store)
	session := auth.NewSession(kv, namespace, bridge)

	return &App{
		Bridge:  bridge,
		Store:   store,
		Board:   kanbanservice.NewService(store),
		Session: session,
	}
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.kv != nil {
		return a.kv.Close()
	}
	return nil
}
