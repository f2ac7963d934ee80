package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "panelkit/1.0"
	maxResponseBytes = 1024 * 64
)

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout.
// Default is 10 seconds if not specified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithTokenSource sets the source of the bearer credential. Calls made
// without a token source are sent unauthenticated.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithExpiryHandler sets the handler invoked when any call observes HTTP 401.
func WithExpiryHandler(h ExpiryHandler) Option {
	return func(c *Client) {
		c.onExpired = h
	}
}

// ExpiryHandlerFunc adapts a plain function to the ExpiryHandler interface.
type ExpiryHandlerFunc func(ctx context.Context)

func (f ExpiryHandlerFunc) SessionExpired(ctx context.Context) { f(ctx) }

// WithLogger sets the structured logger. Default is a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && value != "" {
			c.headers[key] = value
		}
	}
}

// callOptions contains per-call overrides.
type callOptions struct {
	skipAuth   bool
	headers    map[string]string
	errorField string
}

func newCallOptions(opts []CallOption) *callOptions {
	options := &callOptions{errorField: "error"}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// CallOption is a functional option applied to a single call.
type CallOption func(*callOptions)

// WithoutAuth sends the call without the Authorization header and disables
// the 401 expiry side effect, so a 401 surfaces as a plain *RequestError.
// Used for the login call, where 401 means bad credentials, not expiry.
func WithoutAuth() CallOption {
	return func(o *callOptions) {
		o.skipAuth = true
	}
}

// WithCallHeader adds a header to a single call.
func WithCallHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if key != "" && value != "" {
			if o.headers == nil {
				o.headers = make(map[string]string)
			}
			o.headers[key] = value
		}
	}
}
