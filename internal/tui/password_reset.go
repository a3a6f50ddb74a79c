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

// ForgotModel asks for a reset link. On success it opens the reset screen
// with the server confirmation.
type ForgotModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

func NewForgotModel(ctx context.Context, auth service.ClientAuthService) *ForgotModel {
	return &ForgotModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(textField("Email", "you@example.com", 254)),
	}
}

func (m *ForgotModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case forgotDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageReset, Payload: StatusNotice{Text: msg.message}}
		}
	case tea.KeyMsg:
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
			return m, m.cmdForgot(validators.ForgotPasswordForm{Email: strings.TrimSpace(m.form.value(0))})
		}
	}

	return m, m.form.update(msg)
}

func (m *ForgotModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the email of your account to receive a reset link.\n\n")
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Send link", m.submitting))
	writeFeedback(&b, "", m.errMsg)

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}

func (m *ForgotModel) cmdForgot(form validators.ForgotPasswordForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.ForgotPassword(ctx, form)
		return forgotDoneMsg{message: resp.Message, err: err}
	}
}

// ResetModel sets a new password with the token from the reset link. On
// success it opens the login screen.
type ResetModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	status     string
	errMsg     string
}

func NewResetModel(ctx context.Context, auth service.ClientAuthService) *ResetModel {
	return &ResetModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			textField("Token", "token from the reset link", 256),
			passwordField("Password", "at least 6 characters"),
			passwordField("Confirm", "repeat password"),
		),
	}
}

func (m *ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusNotice:
		m.status = msg.Text
		return m, nil
	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: StatusNotice{Text: msg.message}}
		}
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
			return m, m.cmdReset(validators.ResetPasswordForm{
				Token:           extractResetToken(m.form.value(0)),
				Password:        m.form.value(1),
				ConfirmPassword: m.form.value(2),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *ResetModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(submitButton("Reset password", m.submitting))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *ResetModel) cmdReset(form validators.ResetPasswordForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.ResetPassword(ctx, form)
		return resetDoneMsg{message: resp.Message, err: err}
	}
}

// extractResetToken accepts either the bare token or the whole reset link.
func extractResetToken(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.LastIndex(v, "/reset-password/"); i >= 0 {
		return strings.Trim(v[i+len("/reset-password/"):], "/")
	}
	return v
}
