// Package contentsafety provides a Go client for the protected material detection operations of the
// Azure AI Content Safety API.
//
// Protected material detection for code checks whether a code snippet matches known source code,
// typically code published in public repositories, and reports the license and source URLs of
// every match. The package also covers Prompt Shield, which flags prompt injection attacks in a
// user prompt and its accompanying documents.
//
// # Quick Start
//
// You'll need the endpoint of a Content Safety resource and either its subscription key or an AAD
// token.
//
//	import contentsafety "github.com/contentsafety/gosdk"
//
//	client, err := contentsafety.New(
//		contentsafety.WithEndpoint("https://<resource>.cognitiveservices.azure.com"),
//		contentsafety.WithSubscriptionKey("your-subscription-key"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.DetectProtectedCode(context.Background(), "def add(a, b): return a + b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Analysis result:", result)
//
// The schema of a successful response belongs to the service. DetectionResult.Raw holds the
// document exactly as it was received, and DetectionResult.Analysis decodes the fields known
// today:
//
//	analysis, err := result.Analysis()
//	if err == nil && analysis.Detected {
//		analysis.WriteTo(os.Stdout)
//	}
//
// # Authentication
//
// The subscription key is sent in the Ocp-Apim-Subscription-Key header and the AAD token in the
// Authorization header. Either or both may be set; empty values are not sent. To obtain tokens
// from an Azure identity instead, pass any azcore.TokenCredential:
//
//	cred, err := azidentity.NewDefaultAzureCredential(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := contentsafety.New(
//		contentsafety.WithEndpoint(endpoint),
//		contentsafety.WithTokenCredential(cred),
//	)
//
// # Error Handling
//
// Every call sends exactly one request. Nothing is retried, and failures fall into two groups:
//
//   - *APIError: the service answered with a status other than 200. StatusCode and the raw
//     response text in Body are always set; Detail is set when the body is the service's JSON
//     error document.
//   - *TransportError: no response was received, for example because the connection was refused,
//     DNS failed, or the context deadline passed.
//
//	result, err := client.DetectProtectedCode(ctx, code)
//	var apiErr *contentsafety.APIError
//	var transportErr *contentsafety.TransportError
//	switch {
//	case errors.As(err, &apiErr):
//		fmt.Println("Error:", apiErr.StatusCode, apiErr.Body)
//	case errors.As(err, &transportErr):
//		fmt.Println("Error:", transportErr.Err)
//	}
//
// A 200 response whose body is not JSON gives an error wrapping ErrInvalidResponse.
//
// # Timeouts
//
// The default HTTP client times out reads and writes after 30 seconds. A context deadline, if
// set, also bounds the call:
//
//	client, err := contentsafety.New(
//		contentsafety.WithEndpoint(endpoint),
//		contentsafety.WithTimeout(60 * time.Second),
//	)
package contentsafety
