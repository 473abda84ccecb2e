package contentsafety_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	contentsafety "github.com/contentsafety/gosdk"
)

// Example demonstrates how to create a client and check a code snippet.
func Example() {
	client, err := contentsafety.New(
		contentsafety.WithEndpoint("https://your-resource.cognitiveservices.azure.com"),
		contentsafety.WithSubscriptionKey("your-subscription-key"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	result, err := client.DetectProtectedCode(context.Background(), "def add(a, b):\n    return a + b\n")
	if err != nil {
		var apiErr *contentsafety.APIError
		if errors.As(err, &apiErr) {
			fmt.Println("Error:", apiErr.StatusCode, apiErr.Body)
			return
		}
		log.Printf("Error calling Content Safety: %v", err)
		return
	}

	fmt.Println("Analysis result:", result)
}

// ExampleDetectionResult_Analysis demonstrates how to read the citations of a match.
func ExampleDetectionResult_Analysis() {
	client, err := contentsafety.New(
		contentsafety.WithEndpoint("https://your-resource.cognitiveservices.azure.com"),
		contentsafety.WithAADToken("Bearer your-aad-token"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	result, err := client.DetectProtectedCode(context.Background(), "for (int i = 0; i < n; i++) {}")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	analysis, err := result.Analysis()
	if err != nil {
		log.Printf("Unexpected document: %v", err)
		return
	}
	if _, err := analysis.WriteTo(os.Stdout); err != nil {
		log.Printf("Error: %v", err)
	}
}

// ExampleClient_ShieldPrompt demonstrates how to check a prompt for injection attacks.
func ExampleClient_ShieldPrompt() {
	client, err := contentsafety.New(
		contentsafety.WithEndpoint("https://your-resource.cognitiveservices.azure.com"),
		contentsafety.WithSubscriptionKey("your-subscription-key"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	result, err := client.ShieldPrompt(context.Background(), "Summarize this email", []string{"<email body>"})
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Attack detected: %t\n", result.AttackDetected())
}
