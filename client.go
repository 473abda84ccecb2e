package contentsafety

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/contentsafety/gosdk/internal"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "contentsafety-gosdk"
)

// Option is a function that configures the client
type Option func(*cfg)

// WithEndpoint sets the endpoint of your Content Safety resource, for example
// "https://<resource>.cognitiveservices.azure.com". It is required.
func WithEndpoint(endpoint string) Option {
	return func(c *cfg) {
		c.endpoint = endpoint
	}
}

// WithSubscriptionKey sets the key sent in the Ocp-Apim-Subscription-Key header. Use this, an AAD
// token, or both.
func WithSubscriptionKey(key string) Option {
	return func(c *cfg) {
		c.subscriptionKey = key
	}
}

// WithAADToken sets the value sent in the Authorization header. The value is sent verbatim, so
// include the "Bearer " prefix if your token needs one.
func WithAADToken(token string) Option {
	return func(c *cfg) {
		c.aadToken = token
	}
}

// WithTokenCredential asks cred for a token before every request and sends it as a bearer token.
// It takes precedence over WithAADToken.
func WithTokenCredential(cred azcore.TokenCredential) Option {
	return func(c *cfg) {
		c.tokenCredential = cred
	}
}

// WithTimeout sets the read and write timeout of the default HTTP client. If not set, the default
// timeout is 30 seconds. It has no effect together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *cfg) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client used to talk to the service.
func WithHTTPClient(client *fasthttp.Client) Option {
	return func(c *cfg) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics. Responses are logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *cfg) {
		c.logger = logger
	}
}

// cfg holds configuration for the Content Safety client
type cfg struct {
	// endpoint is the base URL of the Content Safety resource
	endpoint string
	// subscriptionKey is sent as Ocp-Apim-Subscription-Key when set
	subscriptionKey string
	// aadToken is sent as Authorization when set
	aadToken string
	// tokenCredential supplies bearer tokens, overriding aadToken
	tokenCredential azcore.TokenCredential
	// timeout is the default timeout for requests
	timeout time.Duration
	// httpClient overrides the default HTTP client
	httpClient *fasthttp.Client
	// logger receives request diagnostics
	logger zerolog.Logger
}

// Client is the Content Safety client. It keeps no state between calls: every call results in
// exactly one request to the service, and nothing is cached or retried.
type Client struct {
	config *cfg
	http   *fasthttp.Client
	api    *internal.Client
}

// New creates a new Content Safety client
func New(options ...Option) (*Client, error) {
	config := &cfg{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, option := range options {
		option(config)
	}

	if config.endpoint == "" {
		return nil, ErrEndpointRequired
	}

	httpClient := config.httpClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:         defaultUserAgent,
			ReadTimeout:  config.timeout,
			WriteTimeout: config.timeout,
		}
	}

	return &Client{
		config: config,
		http:   httpClient,
		api:    internal.NewClient(config.endpoint, httpClient),
	}, nil
}

// Close releases idle connections held by the client. You can do this with defer once you are done
// with the client.
func (c *Client) Close() error {
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// DetectProtectedCode checks whether code matches known protected source code. On HTTP 200 the
// response document is returned unchanged in DetectionResult.Raw. Any other status gives an
// *APIError carrying the status code and the raw response text; a request that never got a response
// gives a *TransportError.
func (c *Client) DetectProtectedCode(ctx context.Context, code string) (*DetectionResult, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.DetectProtectedCode(ctx, creds, code)
	if err != nil {
		return nil, c.transportError("detect protected code", err)
	}
	c.logResponse("detect protected code", resp)

	if resp.StatusCode != fasthttp.StatusOK {
		return nil, newAPIError(resp)
	}
	if err := validateJSON(resp.Body); err != nil {
		return nil, err
	}

	return &DetectionResult{
		Raw:        resp.Body,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}, nil
}

// ShieldPrompt checks a user prompt and the documents that accompany it for prompt injection
// attacks. Errors are reported the same way as by DetectProtectedCode.
func (c *Client) ShieldPrompt(ctx context.Context, userPrompt string, documents []string) (*ShieldPromptResult, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	if documents == nil {
		documents = []string{}
	}
	resp, err := c.api.ShieldPrompt(ctx, creds, &internal.ShieldPromptRequest{
		UserPrompt: userPrompt,
		Documents:  documents,
	})
	if err != nil {
		return nil, c.transportError("shield prompt", err)
	}
	c.logResponse("shield prompt", resp)

	if resp.StatusCode != fasthttp.StatusOK {
		return nil, newAPIError(resp)
	}

	result := &ShieldPromptResult{Raw: resp.Body}
	if err := sonic.Unmarshal(resp.Body, result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return result, nil
}

func (c *Client) transportError(op string, err error) error {
	c.config.logger.Debug().Err(err).Str("operation", op).Msg("request failed before a response was received")
	return &TransportError{Err: err}
}

func (c *Client) logResponse(op string, resp *internal.Response) {
	event := c.config.logger.Debug()
	if !event.Enabled() {
		return
	}
	headers := zerolog.Dict()
	for key, values := range resp.Header {
		headers.Strs(key, values)
	}
	event.
		Str("operation", op).
		Int("status", resp.StatusCode).
		Dict("headers", headers).
		Int("body_bytes", len(resp.Body)).
		Msg("received response")
}

// validateJSON checks that body is a JSON document without interpreting it.
func validateJSON(body []byte) error {
	var doc any
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}
