package internal

import (
	"context"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

// Client performs single POST calls against a content safety endpoint. It holds no per-call state,
// so the same Client can be used for any number of independent calls.
type Client struct {
	// endpointBase is the base URL of the resource, without a trailing slash
	endpointBase string

	// http is the underlying fasthttp client
	http *fasthttp.Client
}

func NewClient(endpoint string, httpClient *fasthttp.Client) *Client {
	return &Client{
		endpointBase: strings.TrimRight(endpoint, "/"),
		http:         httpClient,
	}
}

// ProtectedCodeURL returns the protected material for code URL for the given endpoint.
func ProtectedCodeURL(endpoint string) string {
	return strings.TrimRight(endpoint, "/") + protectedCodePath + "?api-version=" + ProtectedCodeAPIVersion
}

// ShieldPromptURL returns the prompt shield URL for the given endpoint.
func ShieldPromptURL(endpoint string) string {
	return strings.TrimRight(endpoint, "/") + shieldPromptPath + "?api-version=" + ShieldPromptAPIVersion
}

// DetectProtectedCode sends the code snippet to the protected material for code operation.
func (c *Client) DetectProtectedCode(ctx context.Context, creds Credentials, code string) (*Response, error) {
	return c.post(ctx, ProtectedCodeURL(c.endpointBase), creds, &DetectCodeRequest{Code: code})
}

// ShieldPrompt sends a user prompt and its documents to the prompt shield operation.
func (c *Client) ShieldPrompt(ctx context.Context, creds Credentials, req *ShieldPromptRequest) (*Response, error) {
	return c.post(ctx, ShieldPromptURL(c.endpointBase), creds, req)
}

// post marshals body and issues exactly one POST. A non-nil error means no response was received;
// any HTTP status, including failures, comes back as a Response.
func (c *Client) post(ctx context.Context, url string, creds Credentials, body any) (*Response, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(ContentTypeJSON)
	if creds.SubscriptionKey != "" {
		req.Header.Set(HeaderSubscriptionKey, creds.SubscriptionKey)
	}
	if creds.Authorization != "" {
		req.Header.Set(HeaderAuthorization, creds.Authorization)
	}
	req.SetBody(payload)

	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		// Prefer the context error so callers can match on context.DeadlineExceeded.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	header := make(http.Header)
	resp.Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})

	// resp is released on return, so the body has to be copied out.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       out,
	}, nil
}
