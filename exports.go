package contentsafety

import "github.com/contentsafety/gosdk/internal"

const (
	// ProtectedCodeAPIVersion is the api-version used by DetectProtectedCode
	ProtectedCodeAPIVersion = internal.ProtectedCodeAPIVersion
	// ShieldPromptAPIVersion is the api-version used by ShieldPrompt
	ShieldPromptAPIVersion = internal.ShieldPromptAPIVersion
)

// ProtectedCodeURL returns the URL DetectProtectedCode posts to for the given endpoint.
var ProtectedCodeURL = internal.ProtectedCodeURL
