package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the sign-up screen. A successful registration starts the
// session right away, so it ends the auth flow like a login does.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			textField("Name", "Jane Doe", 50),
			textField("Email", "you@example.com", 254),
			passwordField("Password", "at least 6 characters"),
			passwordField("Confirm", "repeat password"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuthResult:
		m.submitting = false
		m.errMsg = humanizeError(msg.Err)
		return m, nil
	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(validators.RegisterForm{
				Name:            strings.TrimSpace(m.form.value(0)),
				Email:           strings.TrimSpace(m.form.value(1)),
				Password:        m.form.value(2),
				ConfirmPassword: m.form.value(3),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Create account", m.submitting))
	writeFeedback(&b, "", m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(form validators.RegisterForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, form)
		return AuthResult{User: user, Err: err}
	}
}
