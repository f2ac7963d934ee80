package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/panelkit/panelkit/pkg/apiclient"
	"github.com/panelkit/panelkit/pkg/logger"
)

// API is the slice of the request client the store uses. *apiclient.Client
// satisfies it; tests may inject a fake.
type API interface {
	Get(ctx context.Context, path string, out any, opts ...apiclient.CallOption) error
	Post(ctx context.Context, path string, body, out any, opts ...apiclient.CallOption) error
	Put(ctx context.Context, path string, body, out any, opts ...apiclient.CallOption) error
}

// Navigator receives navigation side effects. The logout path pushes the
// login route through it; a UI shell or router adapter implements it.
type Navigator interface {
	NavigateTo(route string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) NavigateTo(route string) { f(route) }

// Store is the sole owner of the Session. All mutations of session state go
// through its operations; the request client reads the credential through
// Token and reports expiry through SessionExpired. Safe for concurrent use:
// a mutex preserves the single-writer discipline the session model assumes.
type Store struct {
	mu         sync.RWMutex
	session    Session
	api        API
	tokens     TokenStore
	nav        Navigator
	loginRoute string
	log        *slog.Logger
}

// New creates a session store. The store starts empty; call Restore to pick
// up a credential persisted by a previous run, and Connect (or WithAPI) to
// wire the request client.
func New(opts ...Option) *Store {
	s := &Store{
		tokens:     NewMemoryTokenStore(),
		loginRoute: defaultLoginRoute,
		log:        logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Connect creates an API client against baseURL wired to this store for
// credential injection and expiry handling, and attaches it as the store's
// API. Extra options are passed through to the client.
func (s *Store) Connect(baseURL string, opts ...apiclient.Option) (*apiclient.Client, error) {
	opts = append(opts,
		apiclient.WithTokenSource(s),
		apiclient.WithExpiryHandler(s),
	)
	client, err := apiclient.New(baseURL, opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.api = client
	s.mu.Unlock()

	return client, nil
}

// Restore initializes the credential from durable storage. An absent entry
// leaves the store unauthenticated and is not an error. Identity stays nil
// until the next CheckAuth or Profile call fetches it.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{Token: token}
	return nil
}

// Token returns the current credential, or an empty string when
// unauthenticated. Implements apiclient.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Identity returns a copy of the cached profile, or nil when none is cached.
func (s *Store) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.Identity == nil {
		return nil
	}
	identity := *s.session.Identity
	return &identity
}

// IsAuthenticated returns true if a credential is present. It does not
// validate the credential; CheckAuth is the authority for that.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated()
}

// SessionExpired clears the session after the request client observed HTTP
// 401. Implements apiclient.ExpiryHandler.
func (s *Store) SessionExpired(ctx context.Context) {
	s.Logout(ctx)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// Login authenticates with the server. On success the credential is written
// to the session and to durable storage, and the identity is cached. On any
// failure the session is left unchanged and the call fails with *LoginError
// carrying the server-provided message when one exists. Never retries.
func (s *Store) Login(ctx context.Context, username, password string) error {
	api := s.currentAPI()
	if api == nil {
		return ErrNoAPI
	}

	var resp loginResponse
	// Unauthenticated call: a 401 here means bad credentials, not expiry,
	// and must not clear an existing session.
	if err := api.Post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp, apiclient.WithoutAuth()); err != nil {
		return newLoginError(err)
	}

	identity := resp.User

	s.mu.Lock()
	s.session = Session{Token: resp.Token, Identity: &identity}
	s.mu.Unlock()

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		// The in-memory session stays usable; only restart persistence is lost.
		s.log.WarnContext(ctx, "failed to persist credential", logger.Error(err))
	}

	s.log.InfoContext(ctx, "logged in", logger.UserID(identity.ID))
	return nil
}

// Logout unconditionally clears the credential and identity, removes the
// durable entry, and navigates to the login route. Idempotent: safe to call
// when already logged out.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = Session{}
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.WarnContext(ctx, "failed to clear persisted credential", logger.Error(err))
	}

	if s.nav != nil {
		s.nav.NavigateTo(s.loginRoute)
	}
}

// CheckAuth reports whether the current credential is still usable. With no
// credential it returns false immediately, without a network call. Otherwise
// it fetches the profile: success updates the cached identity and returns
// true; any failure, transport or auth alike, triggers Logout and returns
// false. This is the sole authority for credential validity, and it is an
// effectful read.
func (s *Store) CheckAuth(ctx context.Context) bool {
	if s.Token() == "" {
		return false
	}

	api := s.currentAPI()
	if api == nil {
		return false
	}

	var identity Identity
	if err := api.Get(ctx, "/auth/profile", &identity); err != nil {
		// On 401 the expiry handler already cleared the session; clearing
		// here covers transport failures, so every failure kind converges
		// to logged-out with a single navigation.
		if !apiclient.IsSessionExpired(err) {
			s.Logout(ctx)
		}
		return false
	}

	s.setIdentity(&identity)
	return true
}

// Profile fetches the current profile. With no credential it returns
// ErrNotAuthenticated without a network call. On fetch failure it triggers
// Logout, same as CheckAuth, and returns the underlying error.
func (s *Store) Profile(ctx context.Context) (*Identity, error) {
	if s.Token() == "" {
		return nil, ErrNotAuthenticated
	}

	api := s.currentAPI()
	if api == nil {
		return nil, ErrNoAPI
	}

	var identity Identity
	if err := api.Get(ctx, "/auth/profile", &identity); err != nil {
		if !apiclient.IsSessionExpired(err) {
			s.Logout(ctx)
		}
		return nil, err
	}

	s.setIdentity(&identity)
	return &identity, nil
}

// UpdateProfileRequest carries the mutable profile fields. Empty fields are
// omitted and left unchanged server-side.
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateProfile updates the profile of the authenticated user and refreshes
// the cached identity from the response.
func (s *Store) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Identity, error) {
	if s.Token() == "" {
		return nil, ErrNotAuthenticated
	}

	api := s.currentAPI()
	if api == nil {
		return nil, ErrNoAPI
	}

	var identity Identity
	if err := api.Put(ctx, "/auth/profile", req, &identity); err != nil {
		return nil, err
	}

	s.setIdentity(&identity)
	return &identity, nil
}

// setIdentity caches the profile, unless a concurrent Logout cleared the
// credential in the meantime: identity is never held without a credential.
func (s *Store) setIdentity(identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Token == "" {
		return
	}
	s.session.Identity = identity
}

func (s *Store) currentAPI() API {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.api
}

// newLoginError maps a request failure to *LoginError, preserving the server
// message when the failure carried one.
func newLoginError(err error) *LoginError {
	var reqErr *apiclient.RequestError
	if errors.As(err, &reqErr) {
		return &LoginError{Message: reqErr.Message, Err: err}
	}
	return &LoginError{Message: "login failed", Err: err}
}
