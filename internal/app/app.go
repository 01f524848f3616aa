// Package app wires configuration, storage and the domain services.
package app

import (
	"context"
	"fmt"

	"github.com/nikkjke/finance-tracker/internal/auth"
	"github.com/nikkjke/finance-tracker/internal/config"
	"github.com/nikkjke/finance-tracker/internal/logging"
	"github.com/nikkjke/finance-tracker/internal/seed"
	"github.com/nikkjke/finance-tracker/internal/service"
	"github.com/nikkjke/finance-tracker/internal/storage"
	"github.com/nikkjke/finance-tracker/internal/storage/postgres"
)

// App holds the opened store and the services built on it.
type App struct {
	Config config.Config
	Store  storage.Store
	Seed   seed.Dataset

	Expenses *service.ExpenseService
	Budgets  *service.BudgetService
	Auth     *service.AuthService
	Theme    *service.ThemeService

	close func() error
}

// Open connects the configured store and builds the services on the
// default seed dataset.
func Open(ctx context.Context, cfg config.Config) (*App, error) {
	data, err := seed.Default()
	if err != nil {
		return nil, err
	}
	store, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a, err := New(cfg, store, data)
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	a.close = closeFn
	return a, nil
}

// New builds the services on an already opened store.
func New(cfg config.Config, store storage.Store, data seed.Dataset) (*App, error) {
	creds, err := auth.NewCredentials(data.Credentials, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo credentials: %w", err)
	}

	opts := service.Options{
		Network:            service.NewNetwork(cfg.LatencyScale, service.NewFixedRate(cfg.FaultRate)),
		SurfaceWriteErrors: cfg.SurfaceWriteErrors,
	}
	return &App{
		Config:   cfg,
		Store:    store,
		Seed:     data,
		Expenses: service.NewExpenseService(store, data.Expenses, opts),
		Budgets:  service.NewBudgetService(store, data.Budgets, opts),
		Auth: service.NewAuthService(store, data.Users, creds, service.AuthOptions{
			Options:          opts,
			ProvisionOnLogin: cfg.ProvisionOnLogin,
			AllowRoleSwitch:  cfg.AllowRoleSwitch,
		}),
		Theme: service.NewThemeService(store, opts),
		close: func() error { return nil },
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.close()
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, func() error, error) {
	switch cfg.Driver() {
	case config.DriverMemory:
		logging.Debugf("app: using in-memory store")
		return storage.NewMemory(), func() error { return nil }, nil
	case config.DriverPostgres:
		s, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logging.Debugf("app: using postgres store")
		return s, func() error { s.Close(); return nil }, nil
	case config.DriverSQLite:
		db, err := storage.NewDB(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		logging.Debugf("app: using sqlite store at %s", cfg.DBPath)
		return db, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store)
}
