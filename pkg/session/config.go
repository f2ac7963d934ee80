package session

// Config holds session store configuration
type Config struct {
	// TokenFile is the path of the persisted credential entry
	TokenFile string `env:"SESSION_TOKEN_FILE" envDefault:".panelkit_token"`

	// LoginRoute is the route pushed on logout (default: "/login")
	LoginRoute string `env:"SESSION_LOGIN_ROUTE" envDefault:"/login"`
}

// DefaultConfig returns default session store configuration
func DefaultConfig() Config {
	return Config{
		TokenFile:  ".panelkit_token",
		LoginRoute: "/login",
	}
}

// NewFromConfig creates a new Store from the provided Config, backed by a
// file token store at cfg.TokenFile.
func NewFromConfig(cfg Config, opts ...Option) (*Store, error) {
	tokens, err := NewFileTokenStore(cfg.TokenFile)
	if err != nil {
		return nil, err
	}

	configOpts := []Option{
		WithTokenStore(tokens),
		WithLoginRoute(cfg.LoginRoute),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...), nil
}
