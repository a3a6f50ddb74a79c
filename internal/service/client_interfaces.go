package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for the account flows.
// Every form is validated before the backend is contacted; a rejected form
// comes back as validators.FieldErrors.
type ClientAuthService interface {
	// Login validates form, authenticates against the backend and starts the
	// session.
	Login(ctx context.Context, form validators.LoginForm) (models.User, error)

	// Register validates form, creates the account and starts the session.
	Register(ctx context.Context, form validators.RegisterForm) (models.User, error)

	// Logout ends the session. The backend call is best effort.
	Logout(ctx context.Context)

	// Profile refreshes the session user from the backend. An expired token
	// clears the session and yields ErrUnauthorized.
	Profile(ctx context.Context) (models.User, error)

	// ForgotPassword asks for a reset link.
	ForgotPassword(ctx context.Context, form validators.ForgotPasswordForm) (models.MessageResponse, error)

	// ResetPassword sets a new password with the token from the reset link.
	ResetPassword(ctx context.Context, form validators.ResetPasswordForm) (models.MessageResponse, error)

	// Restore loads the persisted session and confirms it with Profile.
	Restore(ctx context.Context) (models.User, error)

	// Session returns the session the service operates on.
	Session() *session.Session
}

// ClientRecordService defines the client-side contract for client records.
// All calls run on behalf of the session user.
type ClientRecordService interface {
	List(ctx context.Context) ([]models.Client, error)
	Get(ctx context.Context, id string) (models.Client, error)
	GetByEmail(ctx context.Context, email string) (models.Client, error)

	// Create validates form and stores a new client.
	Create(ctx context.Context, form validators.ClientForm) (models.Client, error)

	// Replace validates form and overwrites every field of the client.
	Replace(ctx context.Context, id string, form validators.ClientForm) (models.Client, error)

	// Patch sends only the non-nil fields of patch.
	Patch(ctx context.Context, id string, patch models.ClientPatch) (models.Client, error)

	Delete(ctx context.Context, id string) (models.MessageResponse, error)
}

// ClientDashboardService computes the dashboard aggregates. It is pure and
// never contacts the backend.
type ClientDashboardService interface {
	// Filter keeps the clients whose name, email or company contains term,
	// ignoring case. An empty term keeps everything.
	Filter(clients []models.Client, term string) []models.Client

	// UpcomingRenewals returns the clients renewing within [now, now+30d].
	UpcomingRenewals(clients []models.Client, now time.Time) []models.Client

	// TotalRevenue sums the subscription amounts.
	TotalRevenue(clients []models.Client) float64

	// IsUpcoming reports whether c renews no later than now+30d.
	IsUpcoming(c models.Client, now time.Time) bool

	// Stats returns the dashboard header numbers.
	Stats(clients []models.Client, now time.Time) models.DashboardStats

	// ExportXLSX writes clients as a spreadsheet to w.
	ExportXLSX(clients []models.Client, w io.Writer) error
}
