package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/xuri/excelize/v2"
)

// renewalWindowDays is how far ahead a renewal counts as upcoming.
const renewalWindowDays = 30

const exportSheet = "Clients"

type clientDashboardService struct{}

func NewClientDashboardService() ClientDashboardService {
	return &clientDashboardService{}
}

func (d *clientDashboardService) Filter(clients []models.Client, term string) []models.Client {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clients
	}

	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Company), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (d *clientDashboardService) UpcomingRenewals(clients []models.Client, now time.Time) []models.Client {
	upcoming := make([]models.Client, 0)
	for _, c := range clients {
		if !c.SubscriptionRenewalDate.Before(now) && d.IsUpcoming(c, now) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}

func (d *clientDashboardService) TotalRevenue(clients []models.Client) float64 {
	var total float64
	for _, c := range clients {
		total += c.SubscriptionAmount
	}
	return total
}

// IsUpcoming is true for overdue renewals as well.
func (d *clientDashboardService) IsUpcoming(c models.Client, now time.Time) bool {
	return !c.SubscriptionRenewalDate.After(now.AddDate(0, 0, renewalWindowDays))
}

func (d *clientDashboardService) Stats(clients []models.Client, now time.Time) models.DashboardStats {
	return models.DashboardStats{
		Total:            len(clients),
		UpcomingRenewals: len(d.UpcomingRenewals(clients, now)),
		TotalRevenue:     d.TotalRevenue(clients),
	}
}

func (d *clientDashboardService) ExportXLSX(clients []models.Client, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Name", "Email", "Phone", "Company", "Renewal date", "Amount", "Notes"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, c := range clients {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []any{
			c.Name,
			c.Email,
			c.Phone,
			c.Company,
			c.SubscriptionRenewalDate.Format(validators.DateLayout),
			c.SubscriptionAmount,
			c.Notes,
		}
		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
