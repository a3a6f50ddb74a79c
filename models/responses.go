package models

// MessageResponse is the confirmation payload returned by endpoints
// that have no entity to return (logout, delete, password reset).
//
// Error responses use the same shape: the backend puts a human readable
// explanation into Message, and the client surfaces it as is.
type MessageResponse struct {
	Message string `json:"message"`
}
