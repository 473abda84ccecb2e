package internal

import "net/http"

const (
	// ProtectedCodeAPIVersion is the api-version sent with protected material detection calls.
	ProtectedCodeAPIVersion = "2024-09-15-preview"
	// ShieldPromptAPIVersion is the api-version sent with prompt shield calls.
	ShieldPromptAPIVersion = "2024-09-01"

	protectedCodePath = "/contentsafety/text:detectProtectedMaterialForCode"
	shieldPromptPath  = "/contentsafety/text:shieldPrompt"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderSubscriptionKey = "Ocp-Apim-Subscription-Key"
	HeaderAuthorization   = "Authorization"

	ContentTypeJSON = "application/json"
)

// DetectCodeRequest is the body of a protected material for code call.
type DetectCodeRequest struct {
	Code string `json:"code"`
}

// ShieldPromptRequest is the body of a prompt shield call.
type ShieldPromptRequest struct {
	UserPrompt string   `json:"userPrompt"`
	Documents  []string `json:"documents"`
}

// Credentials are the values attached to every outgoing request. Empty values are not sent.
type Credentials struct {
	SubscriptionKey string
	Authorization   string
}

// Response is a copy of what came back from the service. Body is owned by the caller.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ErrorEnvelope is the error document the service returns on failures.
type ErrorEnvelope struct {
	Error *ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Target     string      `json:"target"`
	Details    []string    `json:"details"`
	InnerError *InnerError `json:"innererror"`
}

type InnerError struct {
	Code       string `json:"code"`
	InnerError string `json:"innererror"`
}
