package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/panelkit/panelkit/pkg/logger"
)

// TokenSource supplies the current bearer credential. An empty string means
// the caller is unauthenticated and no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// ExpiryHandler receives the credential-expiry side effect. It is invoked
// exactly once per call that observes HTTP 401, before the call fails with
// ErrSessionExpired.
type ExpiryHandler interface {
	SessionExpired(ctx context.Context)
}

// Client performs JSON calls against a fixed API base URL, injecting the
// current credential and translating transport and HTTP outcomes into a
// uniform error contract. Zero value is not usable; use New.
type Client struct {
	// httpClient is reused across requests for connection pooling
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	onExpired  ExpiryHandler
	headers    map[string]string
	userAgent  string
	log        *slog.Logger
}

// New creates a client for the given base URL, e.g.
// "http://localhost:8080/api/v1". The base URL must be absolute http or https.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		headers:   make(map[string]string),
		userAgent: defaultUserAgent,
		log:       logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do performs a JSON call. The body, when non-nil, is marshaled to JSON. On
// success the response payload (the "data" field of the envelope, or the whole
// body when no envelope is present) is decoded into out, which may be nil when
// the caller discards the response.
//
// HTTP 401 triggers the expiry handler and fails with ErrSessionExpired. Other
// non-2xx statuses fail with *RequestError carrying the server-provided error
// message. Network and decode failures fail with ErrTransport. There is no
// retry policy.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	return c.call(ctx, method, path, reader, "application/json", out, newCallOptions(opts))
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out, opts...)
}

// Upload performs a POST with a caller-encoded body, typically a multipart
// form. The Content-Type header is delegated to the caller so the multipart
// boundary survives intact. Status handling is identical to Do, except error
// bodies carry the message under "message" instead of "error".
func (c *Client) Upload(ctx context.Context, path, contentType string, body io.Reader, out any, opts ...CallOption) error {
	options := newCallOptions(opts)
	options.errorField = "message"
	return c.call(ctx, http.MethodPost, path, body, contentType, out, options)
}

func (c *Client) call(ctx context.Context, method, path string, body io.Reader, contentType string, out any, options *callOptions) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	if !options.skipAuth && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "request transport failure",
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 64KB limit prevents memory exhaustion on hostile responses
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	c.log.DebugContext(ctx, "request completed",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized && !options.skipAuth {
		// 401 is reserved for credential expiry: clear the session before
		// surfacing the failure to the caller.
		if c.onExpired != nil {
			c.onExpired.SessionExpired(ctx)
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newRequestError(resp.StatusCode, raw, options.errorField)
	}

	if out == nil {
		return nil
	}

	return decodeEnvelope(raw, out)
}

// envelope is the standard success wrapper used by the API. Responses that
// are not wrapped decode directly into the caller's type.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: invalid response body: %w", ErrTransport, err)
	}
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: invalid response payload: %w", ErrTransport, err)
	}
	return nil
}

func newRequestError(status int, raw []byte, errorField string) *RequestError {
	message := fmt.Sprintf("request failed: %d", status)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err == nil {
		if field, ok := body[errorField]; ok {
			var msg string
			if err := json.Unmarshal(field, &msg); err == nil && msg != "" {
				message = msg
			}
		}
	}

	return &RequestError{Status: status, Message: message}
}
