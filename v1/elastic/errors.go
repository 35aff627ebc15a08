package elastic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotFound is returned by AnnotationByID when no document has the id.
	ErrNotFound = errors.New("annotation not found")

	// ErrNotConnected is returned when the client has not been initialized.
	ErrNotConnected = errors.New("elastic client is not initialized")
)

// ResponseError is an error answer of the cluster.
type ResponseError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ResponseError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("elasticsearch returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("elasticsearch returned status %d: %s: %s", e.StatusCode, e.Type, e.Reason)
}

// decodeError reads an error body of the form
// {"error":{"type":"...","reason":"..."},"status":400}.
// Older clusters answer with a plain string in "error".
func decodeError(status int, body io.Reader) error {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	respErr := &ResponseError{StatusCode: status}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || len(payload.Error) == 0 {
		return respErr
	}

	var cause struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(payload.Error, &cause); err == nil {
		respErr.Type = cause.Type
		respErr.Reason = cause.Reason
		return respErr
	}

	var reason string
	if err := json.Unmarshal(payload.Error, &reason); err == nil {
		respErr.Reason = reason
	}
	return respErr
}
