package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/adapter"
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/tui"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/internal/workers"
	"github.com/MKhiriev/client-keeper/models"
)

type App struct {
	services *service.ClientServices
	ui       userInterface
	workers  *workers.Workers
	closers  []func() error

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	s := session.New(storages.SessionRepository)
	services := service.NewClientServices(serverAdapter, s, validators.NewValidator(), cfg.Workers.RefreshInterval, logger)

	app := newApp(services, tui.New(services, buildInfo, logger), logger)
	app.closers = append(app.closers, storages.Close)
	return app, nil
}

func newApp(services *service.ClientServices, ui userInterface, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.RefreshJob),
		logger:   logger,
	}
}

func (a *App) Run() error {
	return a.run(context.Background())
}

// run restores the session or runs the auth flow, then shows the dashboard.
// Logging out starts over from the auth flow.
func (a *App) run(ctx context.Context) error {
	for {
		user, err := a.services.AuthService.Restore(ctx)
		if err != nil {
			a.logger.Info().Err(err).Msg("no usable saved session")

			user, err = a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		logout, err := a.dashboard(ctx, user)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			return nil
		}

		a.services.AuthService.Logout(ctx)
		a.logger.Info().Str("user_id", user.ID).Msg("logged out")
	}
}

func (a *App) dashboard(ctx context.Context, user models.User) (bool, error) {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Start(workerCtx)
	defer a.workers.Stop()

	// the screen shares workerCtx so its pending reads of the refresh
	// channel end together with the workers
	return a.ui.Dashboard(workerCtx, user)
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
