package apiclient

import "time"

// Config holds client configuration
type Config struct {
	// BaseURL is the absolute API base, including the version prefix
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`

	// Timeout is the per-request timeout; the transport's own timeout governs
	// beyond it
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	UserAgent string `env:"API_USER_AGENT" envDefault:"panelkit/1.0"`
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8080/api/v1",
		Timeout:   10 * time.Second,
		UserAgent: "panelkit/1.0",
	}
}

// NewFromConfig creates a new Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{
		WithTimeout(cfg.Timeout),
		WithUserAgent(cfg.UserAgent),
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
