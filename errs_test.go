package contentsafety

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentsafety/gosdk/internal"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail *ErrorDetail
	}{
		{
			name:   "plain text body",
			status: http.StatusNotFound,
			body:   "not found",
		},
		{
			name:   "empty body",
			status: http.StatusInternalServerError,
			body:   "",
		},
		{
			name:   "json without error object",
			status: http.StatusBadRequest,
			body:   `{"message":"nope"}`,
		},
		{
			name:   "error object without code or message",
			status: http.StatusBadRequest,
			body:   `{"error":{}}`,
		},
		{
			name:   "full error document",
			status: http.StatusBadRequest,
			body: `{"error":{"code":"InvalidRequestBody","message":"The code field is required.","target":"code",` +
				`"details":["first","second"],"innererror":{"code":"MissingField","innererror":"code"}}}`,
			wantDetail: &ErrorDetail{
				Code:       "InvalidRequestBody",
				Message:    "The code field is required.",
				Target:     "code",
				Details:    []string{"first", "second"},
				InnerCode:  "MissingField",
				InnerError: "code",
			},
		},
		{
			name:   "error document without inner error",
			status: http.StatusUnauthorized,
			body:   `{"error":{"code":"401","message":"Access denied"}}`,
			wantDetail: &ErrorDetail{
				Code:    "401",
				Message: "Access denied",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newAPIError(&internal.Response{StatusCode: tt.status, Body: []byte(tt.body)})

			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.body, apiErr.Body, "body must be kept verbatim")
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	plain := &APIError{StatusCode: 404, Body: "not found"}
	assert.Equal(t, "content safety API error: status 404: not found", plain.Error())

	detailed := &APIError{
		StatusCode: 401,
		Body:       `{"error":{"code":"401","message":"Access denied"}}`,
		Detail:     &ErrorDetail{Code: "401", Message: "Access denied"},
	}
	assert.Equal(t, "content safety API error: status 401: 401: Access denied", detailed.Error())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := fmt.Errorf("calling service: %w", &TransportError{Err: cause})

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, cause, transportErr.Err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")

	wrappedCtx := &TransportError{Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(wrappedCtx, context.DeadlineExceeded))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	var apiErr error = &APIError{StatusCode: 500}
	var transportErr error = &TransportError{Err: errors.New("boom")}

	var asTransport *TransportError
	var asAPI *APIError
	assert.False(t, errors.As(apiErr, &asTransport))
	assert.False(t, errors.As(transportErr, &asAPI))
}
