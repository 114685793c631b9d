package ttkia

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		status   int
		auth     bool
		notFound bool
	}{
		{http.StatusUnauthorized, true, false},
		{http.StatusForbidden, true, false},
		{http.StatusNotFound, false, true},
		{http.StatusBadRequest, false, false},
		{http.StatusInternalServerError, false, false},
		{http.StatusBadGateway, false, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := statusError(tt.status, "/query_complete", `{"detail":"nope"}`)
			require.Error(t, err)
			assert.Equal(t, tt.auth, IsAuth(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))

			// All variants expose the APIError fields.
			var ae *APIError
			switch {
			case tt.auth:
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				ae = &authErr.APIError
			case tt.notFound:
				var nfe *NotFoundError
				require.ErrorAs(t, err, &nfe)
				ae = &nfe.APIError
			default:
				require.ErrorAs(t, err, &ae)
			}
			assert.Equal(t, tt.status, ae.StatusCode)
			assert.Equal(t, "/query_complete", ae.Endpoint)
			assert.Contains(t, err.Error(), "/query_complete")
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{Endpoint: "/env", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/env")
}

func TestFileErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("open notes.txt: %w", errors.New("permission denied"))
	err := &FileError{Path: "notes.txt", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "notes.txt")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "query", Reason: "must not be empty"}
	assert.Equal(t, "invalid query: must not be empty", err.Error())
}
