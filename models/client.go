package models

import "time"

// Client is a subscription customer owned by a dashboard user.
type Client struct {
	// ID is the unique identifier generated by the backend.
	ID string `json:"_id"`

	// OwnerID is the user that created the record. Server side only.
	OwnerID string `json:"-"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`

	// SubscriptionRenewalDate is the calendar date of the next renewal.
	SubscriptionRenewalDate time.Time `json:"subscriptionRenewalDate"`

	// SubscriptionAmount is the renewal price. It is never negative.
	SubscriptionAmount float64 `json:"subscriptionAmount"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// Data returns the writable fields of the record.
func (c Client) Data() ClientData {
	return ClientData{
		Name:                    c.Name,
		Email:                   c.Email,
		Phone:                   c.Phone,
		Company:                 c.Company,
		SubscriptionRenewalDate: c.SubscriptionRenewalDate,
		SubscriptionAmount:      c.SubscriptionAmount,
		Notes:                   c.Notes,
	}
}

// ClientData holds the client fields without identifier and timestamps.
// It is the body of POST /clients and PUT /clients/{id}.
type ClientData struct {
	Name                    string    `json:"name" validate:"required,min=2,max=50"`
	Email                   string    `json:"email" validate:"required,emailaddr"`
	Phone                   string    `json:"phone" validate:"required,min=10,max=15"`
	Company                 string    `json:"company" validate:"required,min=2,max=100"`
	SubscriptionRenewalDate time.Time `json:"subscriptionRenewalDate" validate:"required"`
	SubscriptionAmount      float64   `json:"subscriptionAmount" validate:"min=0"`
	Notes                   string    `json:"notes,omitempty" validate:"max=500"`
}

// ClientPatch is the body of PATCH /clients/{id}.
// Only non-nil fields are sent and updated.
type ClientPatch struct {
	Name                    *string    `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email                   *string    `json:"email,omitempty" validate:"omitempty,emailaddr"`
	Phone                   *string    `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Company                 *string    `json:"company,omitempty" validate:"omitempty,min=2,max=100"`
	SubscriptionRenewalDate *time.Time `json:"subscriptionRenewalDate,omitempty"`
	SubscriptionAmount      *float64   `json:"subscriptionAmount,omitempty" validate:"omitempty,min=0"`
	Notes                   *string    `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Company == nil &&
		p.SubscriptionRenewalDate == nil && p.SubscriptionAmount == nil && p.Notes == nil
}

// Apply returns a copy of c with the non-nil patch fields applied.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.SubscriptionRenewalDate != nil {
		c.SubscriptionRenewalDate = *p.SubscriptionRenewalDate
	}
	if p.SubscriptionAmount != nil {
		c.SubscriptionAmount = *p.SubscriptionAmount
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}

// DashboardStats is the summary shown above the client list.
type DashboardStats struct {
	// Total is the number of clients.
	Total int

	// UpcomingRenewals is the number of clients renewing within the next 30 days.
	UpcomingRenewals int

	// TotalRevenue is the sum of all subscription amounts.
	TotalRevenue float64
}
