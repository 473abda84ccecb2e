package contentsafety

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/contentsafety/gosdk/internal"
)

var (
	ErrEndpointRequired = errors.New("endpoint is required")
	ErrInvalidResponse  = errors.New("invalid response from Content Safety API")
	ErrTokenUnavailable = errors.New("unable to obtain AAD token")
)

// APIError is returned when the service answered with any status other than 200. Body always holds
// the response text exactly as it was received. If the text is the service's JSON error document,
// Detail holds its parsed form.
//
// Both client and server errors are reported the same way:
//
//	var apiErr *contentsafety.APIError
//	if errors.As(err, &apiErr) {
//		log.Printf("status %d: %s", apiErr.StatusCode, apiErr.Body)
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int
	// Body is the raw response text
	Body string
	// Detail is the parsed error document, nil if the body was not one
	Detail *ErrorDetail
}

// ErrorDetail mirrors the "error" object of the service's error document.
type ErrorDetail struct {
	Code       string
	Message    string
	Target     string
	Details    []string
	InnerCode  string
	InnerError string
}

// Error returns a string representation of the error.
func (e *APIError) Error() string {
	if e.Detail != nil && e.Detail.Message != "" {
		return fmt.Sprintf("content safety API error: status %d: %s: %s", e.StatusCode, e.Detail.Code, e.Detail.Message)
	}
	return fmt.Sprintf("content safety API error: status %d: %s", e.StatusCode, e.Body)
}

// TransportError is returned when no response was received at all: connection refused, DNS
// failure, timeouts and canceled contexts all end up here.
type TransportError struct {
	// Err is the underlying network or context error
	Err error
}

// Error returns a string representation of the error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("content safety transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// newAPIError builds an APIError from a failed response, picking up the error document if the
// body contains one.
func newAPIError(resp *internal.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}

	var envelope internal.ErrorEnvelope
	if err := sonic.Unmarshal(resp.Body, &envelope); err != nil || envelope.Error == nil {
		return apiErr
	}
	if envelope.Error.Code == "" && envelope.Error.Message == "" {
		return apiErr
	}

	apiErr.Detail = &ErrorDetail{
		Code:    envelope.Error.Code,
		Message: envelope.Error.Message,
		Target:  envelope.Error.Target,
		Details: envelope.Error.Details,
	}
	if inner := envelope.Error.InnerError; inner != nil {
		apiErr.Detail.InnerCode = inner.Code
		apiErr.Detail.InnerError = inner.InnerError
	}
	return apiErr
}
