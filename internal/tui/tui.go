package tui

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// AuthFlow runs the welcome menu until the user logs in or registers.
// It returns ErrUserQuit when the user leaves with ctrl+c.
func (t *TUI) AuthFlow(ctx context.Context) (models.User, error) {
	auth := t.services.AuthService
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
		pageForgot:   NewForgotModel(ctx, auth),
		pageReset:    NewResetModel(ctx, auth),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("auth flow finished")
	return result.user, nil
}

// Dashboard runs the client dashboard for user. logout is true when the user
// logged out or the session expired; the caller then returns to AuthFlow.
func (t *TUI) Dashboard(ctx context.Context, user models.User) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.expired {
		t.logger.Warn().Msg("session expired")
	}
	return result.logout, nil
}
