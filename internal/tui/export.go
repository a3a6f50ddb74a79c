package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/client-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

func exportFileName(now time.Time) string {
	return "clients-" + now.Format("20060102-150405") + ".xlsx"
}

// cmdExport writes the currently visible clients to a spreadsheet in
// exportDir.
func (m dashboardModel) cmdExport() tea.Cmd {
	clients := append([]models.Client(nil), m.visible...)
	dashboard := m.services.DashboardService
	path := filepath.Join(m.exportDir, exportFileName(m.now()))

	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("create export file: %w", err)}
		}

		err = dashboard.ExportXLSX(clients, f)
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
			return exportDoneMsg{err: err}
		}

		if abs, absErr := filepath.Abs(path); absErr == nil {
			path = abs
		}
		return exportDoneMsg{path: path, count: len(clients)}
	}
}
