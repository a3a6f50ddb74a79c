package models

import "time"

// User represents an account of the dashboard.
//
// The same shape travels in both directions: the backend returns it from the
// login, register and profile endpoints, and the client keeps it as the
// identity part of a session. Token is only present on login and register
// responses.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique e-mail address used to log in.
	Email string `json:"email"`

	// Token is the bearer token issued on login or registration.
	Token string `json:"token,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LoginRequest is the body of POST /users/loginUser.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,emailaddr"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /users/registerUser.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,emailaddr"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ForgotPasswordRequest is the body of POST /users/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,emailaddr"`
}

// ResetPasswordRequest is the body of POST /users/reset-password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}
