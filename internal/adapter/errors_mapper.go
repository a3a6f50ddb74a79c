package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/client-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into an [*APIError].
// It returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		Kind:    kindFromStatus(status),
		Status:  status,
		Message: messageFromBody(resp.Body()),
	}
}

// kindFromStatus maps an HTTP status of a failed response to its kind.
func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return KindValidation
	default:
		return KindServer
	}
}

// messageFromBody extracts the "message" field of a JSON error payload.
// Anything else yields DefaultErrorMessage.
func messageFromBody(body []byte) string {
	var payload models.MessageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return DefaultErrorMessage
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return payload.Message
	}
	return DefaultErrorMessage
}

// networkError wraps a transport failure where no response was received.
func networkError(op string, err error) error {
	return &APIError{
		Kind:    KindNetwork,
		Message: NetworkErrorMessage,
		Err:     fmt.Errorf("%s request: %w", op, err),
	}
}

// decodeResult decodes a 2xx JSON body into v. A body that does not decode is
// reported as a server error carrying the response status.
func decodeResult(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return &APIError{
			Kind:    KindServer,
			Status:  resp.StatusCode(),
			Message: invalidPayloadMessage,
			Err:     err,
		}
	}
	return nil
}
