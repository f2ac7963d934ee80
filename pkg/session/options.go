package session

import "log/slog"

const defaultLoginRoute = "/login"

// Option configures the session store.
type Option func(*Store)

// WithTokenStore sets the durable credential store.
// Default is an in-memory store that does not survive restarts.
func WithTokenStore(ts TokenStore) Option {
	return func(s *Store) {
		if ts != nil {
			s.tokens = ts
		}
	}
}

// WithNavigator sets the receiver of navigation side effects. Without one,
// logout still clears state but issues no redirect.
func WithNavigator(nav Navigator) Option {
	return func(s *Store) {
		s.nav = nav
	}
}

// WithAPI attaches the request client directly. Prefer Connect outside of
// tests; this option exists to inject fakes.
func WithAPI(api API) Option {
	return func(s *Store) {
		s.api = api
	}
}

// WithLoginRoute overrides the route pushed on logout. Default is "/login".
func WithLoginRoute(route string) Option {
	return func(s *Store) {
		if route != "" {
			s.loginRoute = route
		}
	}
}

// WithLogger sets the structured logger. Default is a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}
