package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

const timestampLayout = "2006-01-02 15:04"

func renderDetail(c models.Client, upcoming bool) string {
	renewal := c.SubscriptionRenewalDate.Format(validators.DateLayout)
	if upcoming {
		renewal += "  " + upcomingStyle.Render("● renewal due soon")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:      %s\n", c.Name)
	fmt.Fprintf(&b, "Email:     %s\n", c.Email)
	fmt.Fprintf(&b, "Phone:     %s\n", c.Phone)
	fmt.Fprintf(&b, "Company:   %s\n", c.Company)
	fmt.Fprintf(&b, "Renewal:   %s\n", renewal)
	fmt.Fprintf(&b, "Amount:    %s\n", formatAmount(c.SubscriptionAmount))
	fmt.Fprintf(&b, "Notes:     %s\n", valueOrDash(c.Notes))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Created:   %s\n", formatTimestamp(c.CreatedAt))
	fmt.Fprintf(&b, "Updated:   %s", formatTimestamp(c.UpdatedAt))
	return b.String()
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}
