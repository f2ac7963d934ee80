package session

// Identity is the cached profile of the authenticated user.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the process-wide authentication state. An empty Token means
// unauthenticated. Identity is non-nil only while Token is non-empty; the
// converse is allowed transiently (token restored from durable storage,
// profile not yet fetched).
type Session struct {
	Token    string
	Identity *Identity
}

// IsAuthenticated returns true if the session holds a credential.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
