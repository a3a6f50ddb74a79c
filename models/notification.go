package models

// PasswordResetNotification is published when a user asks for a password
// reset. A mail worker picks it up and sends Link to Email.
type PasswordResetNotification struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Link  string `json:"link"`
}
