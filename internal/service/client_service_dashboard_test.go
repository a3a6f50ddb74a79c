package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var dashboardNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func dashboardClients() []models.Client {
	day := func(offset int) time.Time { return dashboardNow.AddDate(0, 0, offset) }
	return []models.Client{
		{ID: "1", Name: "Bob Stone", Email: "bob@acme.io", Company: "Acme", SubscriptionRenewalDate: day(5), SubscriptionAmount: 100},
		{ID: "2", Name: "Eve Hart", Email: "eve@globex.com", Company: "Globex", SubscriptionRenewalDate: day(-3), SubscriptionAmount: 50.5},
		{ID: "3", Name: "Ann Lee", Email: "ann@initech.com", Company: "Initech", SubscriptionRenewalDate: day(30), SubscriptionAmount: 0},
		{ID: "4", Name: "Tom Ray", Email: "tom@umbrella.com", Company: "Umbrella", SubscriptionRenewalDate: day(31), SubscriptionAmount: 25},
	}
}

func TestClientDashboardService_Filter(t *testing.T) {
	d := NewClientDashboardService()
	clients := dashboardClients()

	tests := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"1", "2", "3", "4"}},
		{term: "  ", want: []string{"1", "2", "3", "4"}},
		{term: "BOB", want: []string{"1"}},
		{term: "globex.com", want: []string{"2"}},
		{term: "init", want: []string{"3"}},
		{term: "e", want: []string{"1", "2", "3", "4"}},
		{term: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := make([]string, 0)
			for _, c := range d.Filter(clients, tt.term) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientDashboardService_Renewals(t *testing.T) {
	d := NewClientDashboardService()
	clients := dashboardClients()

	upcoming := d.UpcomingRenewals(clients, dashboardNow)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "1", upcoming[0].ID)
	assert.Equal(t, "3", upcoming[1].ID)

	// просроченное продление тоже помечается
	assert.True(t, d.IsUpcoming(clients[1], dashboardNow))
	assert.True(t, d.IsUpcoming(clients[2], dashboardNow))
	assert.False(t, d.IsUpcoming(clients[3], dashboardNow))
}

func TestClientDashboardService_Stats(t *testing.T) {
	d := NewClientDashboardService()

	stats := d.Stats(dashboardClients(), dashboardNow)
	assert.Equal(t, models.DashboardStats{Total: 4, UpcomingRenewals: 2, TotalRevenue: 175.5}, stats)

	assert.Equal(t, models.DashboardStats{}, d.Stats(nil, dashboardNow))
	assert.Zero(t, d.TotalRevenue([]models.Client{}))
}

func TestClientDashboardService_ExportXLSX(t *testing.T) {
	d := NewClientDashboardService()
	clients := dashboardClients()[:2]
	clients[0].Notes = "vip"

	var buf bytes.Buffer
	require.NoError(t, d.ExportXLSX(clients, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Clients")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Company", "Renewal date", "Amount", "Notes"}, rows[0])
	assert.Equal(t, "Bob Stone", rows[1][0])
	assert.Equal(t, "2026-10-19", rows[1][4])
	assert.Equal(t, "100", rows[1][5])
	assert.Equal(t, "vip", rows[1][6])
	assert.Equal(t, "50.5", rows[2][5])
}

func TestClientDashboardService_ExportXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewClientDashboardService().ExportXLSX(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := f.GetRows("Clients")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
