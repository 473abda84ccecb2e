package contentsafety

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

// DetectionResult is the outcome of a successful protected material for code call. The service owns
// the schema of the document, so Raw is returned exactly as received and is the authoritative form.
// Analysis gives a typed view of the fields that are known today.
type DetectionResult struct {
	// Raw is the response body, unchanged. It is always valid JSON.
	Raw []byte
	// StatusCode is the HTTP status code of the response. Always 200 for a DetectionResult.
	StatusCode int
	// Header holds the response headers
	Header http.Header
}

// String returns the raw JSON document.
func (r *DetectionResult) String() string {
	return string(r.Raw)
}

// Analysis decodes the protected material analysis from the raw document. Fields the service adds
// in the future are ignored; fields it omits are left at their zero value.
func (r *DetectionResult) Analysis() (*ProtectedMaterialAnalysis, error) {
	var doc struct {
		ProtectedMaterialAnalysis ProtectedMaterialAnalysis `json:"protectedMaterialAnalysis"`
	}
	if err := sonic.Unmarshal(r.Raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode protected material analysis: %w", err)
	}
	return &doc.ProtectedMaterialAnalysis, nil
}

// ProtectedMaterialAnalysis reports whether the code matched protected material and where it came from.
type ProtectedMaterialAnalysis struct {
	// Detected is true when the snippet matched known source code
	Detected bool `json:"detected"`
	// CodeCitations lists the matched sources
	CodeCitations []CodeCitation `json:"codeCitations"`
}

// CodeCitation is a single source the snippet was matched against.
type CodeCitation struct {
	// License is the license of the matched source, as reported by the service
	License string `json:"license"`
	// SourceURLs are the locations where the matched source can be found
	SourceURLs []string `json:"sourceUrls"`
}

// WriteTo writes a human readable summary of the analysis: the final decision followed by the
// license and source URLs of every citation.
func (a *ProtectedMaterialAnalysis) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Final decision: %t\n", a.Detected)
	for _, citation := range a.CodeCitations {
		fmt.Fprintf(&b, "License: %s\n", citation.License)
		b.WriteString("Source URLs:\n")
		for _, u := range citation.SourceURLs {
			b.WriteString(u)
			b.WriteByte('\n')
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// ShieldPromptResult is the outcome of a successful prompt shield call.
type ShieldPromptResult struct {
	// Raw is the response body, unchanged
	Raw []byte `json:"-"`
	// UserPromptAnalysis covers the user prompt
	UserPromptAnalysis PromptAnalysis `json:"userPromptAnalysis"`
	// DocumentsAnalysis has one entry per submitted document, in order
	DocumentsAnalysis []PromptAnalysis `json:"documentsAnalysis"`
}

// PromptAnalysis tells whether an attack was detected in a prompt or document.
type PromptAnalysis struct {
	AttackDetected bool `json:"attackDetected"`
}

// AttackDetected is true if the user prompt or any document was flagged.
func (r *ShieldPromptResult) AttackDetected() bool {
	if r.UserPromptAnalysis.AttackDetected {
		return true
	}
	for _, doc := range r.DocumentsAnalysis {
		if doc.AttackDetected {
			return true
		}
	}
	return false
}
