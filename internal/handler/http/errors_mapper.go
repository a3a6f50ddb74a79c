package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/service"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order: the first target in the error chain wins.
var errorStatuses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	{service.ErrInvalidResetToken, http.StatusBadRequest, app.MsgInvalidResetToken},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrMissingUserID, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrClientEmailAlreadyExists, http.StatusConflict, app.MsgClientEmailAlreadyExists},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrClientNotFound, http.StatusNotFound, app.MsgClientNotFound},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
}

// responseFromError returns the status and the client-facing message for err.
// Unknown errors are 500 and never leak their text.
func responseFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.target) {
			continue
		}

		var fe validators.FieldErrors
		if e.status == http.StatusBadRequest && errors.As(err, &fe) {
			return e.status, e.message + ": " + fe.First()
		}
		return e.status, e.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
