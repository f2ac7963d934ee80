package navguard

import "log/slog"

const (
	defaultLoginPath = "/login"
	defaultHomePath  = "/dashboard"
)

// Option configures the guard.
type Option func(*Guard)

// WithLoginPath overrides the login route. Default is "/login".
func WithLoginPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithHomePath overrides the default authenticated landing route.
// Default is "/dashboard".
func WithHomePath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.homePath = path
		}
	}
}

// WithLogger sets the structured logger. Default is a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}
