package ttkia

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure cases.
var (
	// ErrNoBaseURL is returned when a client is constructed without a base URL.
	ErrNoBaseURL = errors.New("base URL not configured")

	// ErrNoAppToken is returned when a client is constructed without an app token.
	ErrNoAppToken = errors.New("app token not configured")

	// ErrNoConversation is returned when an operation needs a conversation id
	// and neither an explicit one nor a current one is available.
	ErrNoConversation = errors.New("no conversation id (create a workspace first)")
)

// ValidationError reports invalid or missing local input. It is returned
// before any network call is made.
type ValidationError struct {
	Field  string // The argument that failed validation
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// APIError reports a non-2xx response from the TTKIA service. It carries the
// HTTP status code, the endpoint path, and a bounded copy of the response body.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ttkia: %s: %s: %s", e.Endpoint, http.StatusText(e.StatusCode), e.Body)
	}
	return fmt.Sprintf("ttkia: %s: %s", e.Endpoint, http.StatusText(e.StatusCode))
}

// AuthError reports a 401 or 403 response: the app token is missing, invalid,
// or not allowed to perform the operation.
type AuthError struct {
	APIError
}

// NotFoundError reports a 404 response, typically for a conversation id the
// service no longer knows about.
type NotFoundError struct {
	APIError
}

// TransportError reports a failure to reach the service at all: connection
// refused, DNS failure, timeout. The request never produced an HTTP status.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ttkia: %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FileError reports a local file that could not be read during an upload.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// statusError maps a non-2xx status to the matching error type.
func statusError(status int, endpoint, body string) error {
	apiErr := APIError{StatusCode: status, Endpoint: endpoint, Body: body}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{APIError: apiErr}
	case http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	default:
		return &apiErr
	}
}

// IsAuth reports whether err is an authentication/authorization failure.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
