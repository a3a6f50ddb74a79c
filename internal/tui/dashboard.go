package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardMode int

const (
	modeList dashboardMode = iota
	modeSearch
	modeDetail
	modeForm
	modeConfirmDelete
)

const (
	upcomingMarker = "●"
	statusTTL      = 3 * time.Second
	minTableHeight = 5
)

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	now       func() time.Time
	copyText  func(string) error
	exportDir string

	clients []models.Client
	visible []models.Client
	table   table.Model
	search  textinput.Model

	mode     dashboardMode
	prevMode dashboardMode
	selected models.Client
	form     clientForm

	loading bool
	status  string
	errMsg  string

	logout  bool
	expired bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, user models.User) dashboardModel {
	search := textinput.New()
	search.Placeholder = "name, email or company"
	search.Prompt = "/ "
	search.Width = 40

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: " ", Width: 1},
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 26},
			{Title: "Company", Width: 18},
			{Title: "Renewal", Width: 10},
			{Title: "Amount", Width: 11},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return dashboardModel{
		ctx:       ctx,
		services:  services,
		user:      user,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		exportDir: ".",
		table:     t,
		search:    search,
		loading:   true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadClients(), m.waitForRefresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(minTableHeight, msg.Height-18))
		return m, nil
	case clientsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.errMsg = ""
		m.setClients(msg.clients)
		return m, nil
	case refreshMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, service.ErrUnauthorized) {
				return m.failed(msg.Err)
			}
			m.errMsg = humanizeError(msg.Err)
			return m, m.waitForRefresh()
		}
		m.setClients(msg.Clients)
		return m, m.waitForRefresh()
	case clientSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthorized) {
				return m.failed(msg.err)
			}
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.created {
			m.mode = modeList
			m.upsert(msg.client)
			return m, m.setStatus("Client " + msg.client.Name + " created")
		}
		m.selected = msg.client
		m.mode = modeDetail
		m.upsert(msg.client)
		return m, m.setStatus("Client " + msg.client.Name + " updated")
	case clientDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.errMsg = ""
		m.remove(msg.id)
		return m, m.setStatus(msg.message)
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = "Export failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(fmt.Sprintf("Exported %d clients to %s", msg.count, msg.path))
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		return m, m.setStatus(msg.what + " copied to clipboard")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	switch m.mode {
	case modeForm:
		return m, m.form.update(msg)
	case modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadClients()
	case key.Matches(msg, keys.newItem):
		m.form = newClientForm()
		m.prevMode = modeList
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	c, ok := m.current()
	switch {
	case key.Matches(msg, keys.enter) && ok:
		m.selected = c
		m.mode = modeDetail
		return m, nil
	case key.Matches(msg, keys.edit) && ok:
		return m.startEdit(c, modeList)
	case key.Matches(msg, keys.delete) && ok:
		return m.startDelete(c, modeList)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m dashboardModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy("Email", m.selected.Email)
	case key.Matches(msg, keys.copyTel):
		return m, m.cmdCopy("Phone", m.selected.Phone)
	case key.Matches(msg, keys.edit):
		return m.startEdit(m.selected, modeDetail)
	case key.Matches(msg, keys.delete):
		return m.startDelete(m.selected, modeDetail)
	}
	return m, nil
}

func (m dashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.handleKey(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = m.prevMode
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		m.form.errMsg = ""
		return m, m.cmdSave(m.form.clientID, m.form.values())
	}

	return m, m.form.update(msg)
}

func (m dashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDelete(m.selected.ID)
	case key.Matches(msg, keys.no):
		m.mode = m.prevMode
	}
	return m, nil
}

func (m dashboardModel) startEdit(c models.Client, from dashboardMode) (tea.Model, tea.Cmd) {
	m.selected = c
	m.form = editClientForm(c)
	m.prevMode = from
	m.mode = modeForm
	return m, textinput.Blink
}

func (m dashboardModel) startDelete(c models.Client, from dashboardMode) (tea.Model, tea.Cmd) {
	m.selected = c
	m.prevMode = from
	m.mode = modeConfirmDelete
	return m, nil
}

// failed shows err. An expired session ends the dashboard and sends the
// user back to the auth flow.
func (m dashboardModel) failed(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrUnauthorized) {
		m.expired = true
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m *dashboardModel) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *dashboardModel) setClients(clients []models.Client) {
	m.clients = clients
	m.applyFilter()
}

func (m *dashboardModel) upsert(c models.Client) {
	for i := range m.clients {
		if m.clients[i].ID == c.ID {
			m.clients[i] = c
			m.applyFilter()
			return
		}
	}
	m.setClients(append(m.clients, c))
}

func (m *dashboardModel) remove(id string) {
	kept := make([]models.Client, 0, len(m.clients))
	for _, c := range m.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.setClients(kept)
}

func (m *dashboardModel) applyFilter() {
	m.visible = m.services.DashboardService.Filter(m.clients, m.search.Value())

	now := m.now()
	rows := make([]table.Row, 0, len(m.visible))
	for _, c := range m.visible {
		marker := ""
		if m.services.DashboardService.IsUpcoming(c, now) {
			marker = upcomingMarker
		}
		rows = append(rows, table.Row{
			marker,
			fitText(c.Name, 20),
			fitText(c.Email, 26),
			fitText(c.Company, 18),
			c.SubscriptionRenewalDate.Format(validators.DateLayout),
			formatAmount(c.SubscriptionAmount),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m dashboardModel) current() (models.Client, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return models.Client{}, false
	}
	return m.visible[idx], true
}

func (m dashboardModel) View() string {
	switch m.mode {
	case modeDetail:
		return renderPage("CLIENT", m.detailView(), "e: edit │ d: delete │ c: copy email │ p: copy phone │ esc: back")
	case modeForm:
		return renderPage(m.form.title(), m.form.render(), "esc: cancel │ tab: next field │ enter: save")
	case modeConfirmDelete:
		return renderPage("DELETE CLIENT", renderConfirm(m.selected.Name), "")
	}

	hotKeys := "enter: open │ n: new │ e: edit │ d: delete │ /: search │ x: export │ r: reload │ l: log out │ q: quit"
	if m.mode == modeSearch {
		hotKeys = "enter: keep filter │ esc: clear"
	}
	return renderPage("CLIENTS", m.listView(), hotKeys)
}

func (m dashboardModel) detailView() string {
	var b strings.Builder
	b.WriteString(renderDetail(m.selected, m.services.DashboardService.IsUpcoming(m.selected, m.now())))
	b.WriteString("\n")
	writeFeedback(&b, m.status, m.errMsg)
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) listView() string {
	var b strings.Builder

	if m.user.Name != "" {
		fmt.Fprintf(&b, "Signed in as %s <%s>\n\n", m.user.Name, m.user.Email)
	}

	stats := m.services.DashboardService.Stats(m.clients, m.now())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statBoxStyle.Render(fmt.Sprintf("Total clients\n%d", stats.Total)),
		statBoxStyle.Render(fmt.Sprintf("Upcoming renewals\n%d", stats.UpcomingRenewals)),
		statBoxStyle.Render(fmt.Sprintf("Total revenue\n%s", formatAmount(stats.TotalRevenue))),
	))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.clients) == 0:
		b.WriteString("Loading clients...\n")
	case len(m.clients) == 0:
		b.WriteString("No clients yet. Press n to add one.\n")
	case len(m.visible) == 0:
		b.WriteString("No clients match the search.\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(upcomingStyle.Render(upcomingMarker))
		b.WriteString(helpStyle.Render(" renewal within 30 days"))
		b.WriteString("\n")
	}

	writeFeedback(&b, m.status, m.errMsg)
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) cmdLoadClients() tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		clients, err := records.List(ctx)
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

// waitForRefresh delivers the next background reload. It is re-armed after
// every refreshMsg.
func (m dashboardModel) waitForRefresh() tea.Cmd {
	if m.services.RefreshJob == nil {
		return nil
	}
	ctx := m.ctx
	updates := m.services.RefreshJob.Updates()

	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case r := <-updates:
			return refreshMsg(r)
		}
	}
}

func (m dashboardModel) cmdSave(id string, form validators.ClientForm) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		if id == "" {
			c, err := records.Create(ctx, form)
			return clientSavedMsg{client: c, created: true, err: err}
		}
		c, err := records.Replace(ctx, id, form)
		return clientSavedMsg{client: c, err: err}
	}
}

func (m dashboardModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		resp, err := records.Delete(ctx, id)
		return clientDeletedMsg{id: id, message: resp.Message, err: err}
	}
}

func (m dashboardModel) cmdCopy(what, text string) tea.Cmd {
	copyText := m.copyText

	return func() tea.Msg {
		return copiedMsg{what: what, err: copyText(text)}
	}
}
