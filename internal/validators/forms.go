// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/client-keeper/models"
)

// ClientForm is the create and edit form of a client record. Every field is
// kept as typed by the user.
type ClientForm struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,emailaddr"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	Company     string `json:"company" validate:"required,min=2,max=100"`
	RenewalDate string `json:"subscriptionRenewalDate" validate:"required,calendardate"`
	Amount      string `json:"subscriptionAmount" validate:"required,nonnegative"`
	Notes       string `json:"notes" validate:"max=500"`
}

// ToClientData converts a validated form. It fails with [ErrInvalidForm] when
// the date or the amount does not parse.
func (f ClientForm) ToClientData() (models.ClientData, error) {
	date, err := ParseDate(f.RenewalDate)
	if err != nil {
		return models.ClientData{}, fmt.Errorf("%w: renewal date: %w", ErrInvalidForm, err)
	}
	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return models.ClientData{}, fmt.Errorf("%w: amount: %w", ErrInvalidForm, err)
	}

	return models.ClientData{
		Name:                    strings.TrimSpace(f.Name),
		Email:                   strings.TrimSpace(f.Email),
		Phone:                   strings.TrimSpace(f.Phone),
		Company:                 strings.TrimSpace(f.Company),
		SubscriptionRenewalDate: date,
		SubscriptionAmount:      amount,
		Notes:                   strings.TrimSpace(f.Notes),
	}, nil
}

// ClientFormFromClient prefills the edit form with c.
func ClientFormFromClient(c models.Client) ClientForm {
	return ClientForm{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		RenewalDate: c.SubscriptionRenewalDate.Format(DateLayout),
		Amount:      strconv.FormatFloat(c.SubscriptionAmount, 'f', -1, 64),
		Notes:       c.Notes,
	}
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,emailaddr"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterForm struct {
	Name            string `json:"name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,emailaddr"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,emailaddr"`
}

// ResetPasswordForm carries the token from the reset link and the new
// password.
type ResetPasswordForm struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
