package store

import (
	"github.com/MKhiriev/client-keeper/internal/session"
)

// SessionRepository is the local session store of the terminal client.
// Load returns [ErrSessionNotFound] when nothing is stored.
type SessionRepository interface {
	session.Persister
}
