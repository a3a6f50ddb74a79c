// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on enter.
// A successful [AuthResult] is handled by [RootModel] and ends the auth flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			textField("Email", "you@example.com", 254),
			passwordField("Password", "password"),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [StatusNotice] shows a confirmation, e.g. after a password reset.
//   - [AuthResult]   clears the submitting state and shows a failure.
//   - esc            goes back to the menu.
//   - enter          dispatches the async login command.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusNotice:
		m.status = msg.Text
		return m, nil
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
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(validators.LoginForm{
				Email:    strings.TrimSpace(m.form.value(0)),
				Password: m.form.value(1),
			})
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Log in", m.submitting))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(form validators.LoginForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, form)
		return AuthResult{User: user, Err: err}
	}
}
