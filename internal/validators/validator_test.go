// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validClientForm() ClientForm {
	return ClientForm{
		Name:        "Bob Stone",
		Email:       "bob@example.com",
		Phone:       "5551234567",
		Company:     "Acme",
		RenewalDate: "2026-11-01",
		Amount:      "99.50",
		Notes:       "VIP",
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidForm)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %T", err)
	return fe
}

// ---------------------------------------------------------------------------
// ClientForm
// ---------------------------------------------------------------------------

func TestValidate_ClientForm(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		mutate    func(f *ClientForm)
		wantField string
		wantMsg   string
	}{
		{name: "valid form", mutate: func(f *ClientForm) {}},
		{name: "empty notes are fine", mutate: func(f *ClientForm) { f.Notes = "" }},
		{name: "zero amount is fine", mutate: func(f *ClientForm) { f.Amount = "0" }},
		{name: "upper case email", mutate: func(f *ClientForm) { f.Email = "BOB@EXAMPLE.COM" }},
		{name: "missing name", mutate: func(f *ClientForm) { f.Name = "" }, wantField: "name", wantMsg: "is required"},
		{name: "short name", mutate: func(f *ClientForm) { f.Name = "B" }, wantField: "name", wantMsg: "must be at least 2 characters"},
		{name: "bad email", mutate: func(f *ClientForm) { f.Email = "bob@example" }, wantField: "email", wantMsg: "must be a valid email address"},
		{name: "short phone", mutate: func(f *ClientForm) { f.Phone = "12345" }, wantField: "phone", wantMsg: "must be at least 10 characters"},
		{name: "long phone", mutate: func(f *ClientForm) { f.Phone = "1234567890123456" }, wantField: "phone", wantMsg: "must be at most 15 characters"},
		{name: "short company", mutate: func(f *ClientForm) { f.Company = "A" }, wantField: "company"},
		{name: "not a date", mutate: func(f *ClientForm) { f.RenewalDate = "01/11/2026" }, wantField: "subscriptionRenewalDate", wantMsg: "must be a date in YYYY-MM-DD format"},
		{name: "impossible date", mutate: func(f *ClientForm) { f.RenewalDate = "2026-02-30" }, wantField: "subscriptionRenewalDate"},
		{name: "negative amount", mutate: func(f *ClientForm) { f.Amount = "-1" }, wantField: "subscriptionAmount", wantMsg: "must be a number of 0 or more"},
		{name: "amount is text", mutate: func(f *ClientForm) { f.Amount = "ten" }, wantField: "subscriptionAmount"},
		{name: "missing amount", mutate: func(f *ClientForm) { f.Amount = "" }, wantField: "subscriptionAmount", wantMsg: "is required"},
		{name: "long notes", mutate: func(f *ClientForm) { f.Notes = string(make([]byte, 501)) }, wantField: "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validClientForm()
			tt.mutate(&form)

			err := v.Validate(context.Background(), form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			fe := fieldErrors(t, err)
			assert.Len(t, fe, 1)
			assert.Contains(t, fe, tt.wantField)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, fe[tt.wantField])
			}
		})
	}
}

func TestClientForm_ToClientData(t *testing.T) {
	form := validClientForm()
	form.Name = "  Bob Stone "

	data, err := form.ToClientData()
	require.NoError(t, err)

	assert.Equal(t, "Bob Stone", data.Name)
	assert.Equal(t, 99.5, data.SubscriptionAmount)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), data.SubscriptionRenewalDate)

	form.Amount = "x"
	_, err = form.ToClientData()
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestClientFormFromClient(t *testing.T) {
	c := models.Client{
		Name:                    "Bob",
		Email:                   "bob@example.com",
		SubscriptionRenewalDate: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		SubscriptionAmount:      12.5,
	}

	form := ClientFormFromClient(c)

	assert.Equal(t, "2026-03-07", form.RenewalDate)
	assert.Equal(t, "12.5", form.Amount)
}

// ---------------------------------------------------------------------------
// Auth forms
// ---------------------------------------------------------------------------

func TestValidate_RegisterForm(t *testing.T) {
	v := NewValidator()

	ok := RegisterForm{Name: "Al", Email: "al@example.com", Password: "secret", ConfirmPassword: "secret"}
	require.NoError(t, v.Validate(context.Background(), ok))

	mismatch := ok
	mismatch.ConfirmPassword = "secret2"
	fe := fieldErrors(t, v.Validate(context.Background(), mismatch))
	assert.Equal(t, "does not match the password", fe["confirmPassword"])

	short := ok
	short.Password, short.ConfirmPassword = "12345", "12345"
	fe = fieldErrors(t, v.Validate(context.Background(), &short))
	assert.Equal(t, "must be at least 6 characters", fe["password"])
}

func TestValidate_LoginForm_Partial(t *testing.T) {
	v := NewValidator()

	form := LoginForm{Email: "al@example.com", Password: ""}

	// только email
	assert.NoError(t, v.Validate(context.Background(), form, "Email"))

	fe := fieldErrors(t, v.Validate(context.Background(), form))
	assert.Contains(t, fe, "password")
}

func TestValidate_ResetPasswordForm(t *testing.T) {
	v := NewValidator()

	fe := fieldErrors(t, v.Validate(context.Background(), ResetPasswordForm{Password: "secret", ConfirmPassword: "secret"}))
	assert.Equal(t, "is required", fe["token"])
	assert.Len(t, fe, 1)
}

// ---------------------------------------------------------------------------
// Models
// ---------------------------------------------------------------------------

func TestValidate_ClientData(t *testing.T) {
	v := NewValidator()

	data := models.ClientData{
		Name:                    "Bob",
		Email:                   "bob@example.com",
		Phone:                   "5551234567",
		Company:                 "Acme",
		SubscriptionRenewalDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		SubscriptionAmount:      10,
	}
	require.NoError(t, v.Validate(context.Background(), data))

	data.SubscriptionAmount = -5
	data.SubscriptionRenewalDate = time.Time{}
	fe := fieldErrors(t, v.Validate(context.Background(), data))
	assert.Equal(t, "must be 0 or greater", fe["subscriptionAmount"])
	assert.Equal(t, "is required", fe["subscriptionRenewalDate"])
}

func TestValidate_ClientPatch(t *testing.T) {
	v := NewValidator()

	amount := 50.0
	require.NoError(t, v.Validate(context.Background(), models.ClientPatch{SubscriptionAmount: &amount}))
	require.NoError(t, v.Validate(context.Background(), models.ClientPatch{}))

	bad := "nope"
	fe := fieldErrors(t, v.Validate(context.Background(), models.ClientPatch{Email: &bad}))
	assert.Contains(t, fe, "email")
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewValidator().Validate(context.Background(), "string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrInvalidForm)
}

// ---------------------------------------------------------------------------
// FieldErrors
// ---------------------------------------------------------------------------

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{"phone": "is required", "email": "must be a valid email address"}

	assert.Equal(t, "invalid form: email: must be a valid email address; phone: is required", fe.Error())
	assert.Equal(t, "email must be a valid email address", fe.First())
	assert.Equal(t, "", FieldErrors{}.First())
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a.b+c@sub.example.org"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("a b@example.com"))
}
