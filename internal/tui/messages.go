package tui

import (
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the auth flow to Page. Payload, when set, is delivered
// to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the auth flow when Err is nil.
type AuthResult struct {
	User models.User
	Err  error
}

// StatusNotice is a one-line confirmation shown by the receiving page.
type StatusNotice struct {
	Text string
}

type forgotDoneMsg struct {
	message string
	err     error
}

type resetDoneMsg struct {
	message string
	err     error
}

type clientsLoadedMsg struct {
	clients []models.Client
	err     error
}

type refreshMsg service.ClientsRefresh

type clientSavedMsg struct {
	client  models.Client
	created bool
	err     error
}

type clientDeletedMsg struct {
	id      string
	message string
	err     error
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
