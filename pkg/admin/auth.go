package admin

import (
	"context"

	"github.com/panelkit/panelkit/pkg/session"
)

// AuthService groups the authentication operations behind the same service
// shape as the other API surfaces. It is a thin facade over the session
// store, which remains the sole owner of credential state.
type AuthService struct {
	store *session.Store
}

// NewAuthService creates an auth service over the given session store.
func NewAuthService(store *session.Store) *AuthService {
	return &AuthService{store: store}
}

// Login authenticates and establishes the session.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	return s.store.Login(ctx, username, password)
}

// Logout tears down the session.
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

// Profile returns the current user's profile.
func (s *AuthService) Profile(ctx context.Context) (*session.Identity, error) {
	return s.store.Profile(ctx)
}

// UpdateProfile updates the current user's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, req session.UpdateProfileRequest) (*session.Identity, error) {
	return s.store.UpdateProfile(ctx, req)
}
