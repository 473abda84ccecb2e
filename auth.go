package contentsafety

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/contentsafety/gosdk/internal"
)

// CognitiveServicesScope is the OAuth scope requested from a token credential.
const CognitiveServicesScope = "https://cognitiveservices.azure.com/.default"

// credentials resolves the headers to attach to the next request. When a token credential is
// configured it is asked for a token on every call; whatever caching it does is its own business.
func (c *Client) credentials(ctx context.Context) (internal.Credentials, error) {
	creds := internal.Credentials{
		SubscriptionKey: c.config.subscriptionKey,
		Authorization:   c.config.aadToken,
	}
	if c.config.tokenCredential == nil {
		return creds, nil
	}

	token, err := c.config.tokenCredential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{CognitiveServicesScope},
	})
	if err != nil {
		return creds, fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}
	if token.Token == "" {
		return creds, ErrTokenUnavailable
	}
	creds.Authorization = bearer(token)
	return creds, nil
}

func bearer(token azcore.AccessToken) string {
	return "Bearer " + token.Token
}
