// Package session owns the client-side authentication state: the bearer
// credential and the cached identity of the signed-in user. All mutations go
// through the Store's operations (Login, Logout, CheckAuth, Profile,
// UpdateProfile), which keep one invariant at all times: an identity is never
// held without a live credential.
//
// The package is storage-agnostic: any backend that satisfies the TokenStore
// interface can persist the credential across process restarts. Memory, file
// and Redis implementations ship out of the box.
//
// # Architecture
//
// The Store plugs into the request client from both sides. It implements
// apiclient.TokenSource, so every outbound call reads the current credential
// at call time, and apiclient.ExpiryHandler, so any call that observes HTTP
// 401 clears the session before failing. The Navigator interface receives the
// logout redirect; a router adapter (see pkg/navguard) implements it.
//
//	┌───────────┐  credential   ┌───────────┐
//	│ apiclient │ ◄──────────── │   Store   │
//	│           │ ──── 401 ───► │           │
//	└───────────┘               └───────────┘
//	                              │        │
//	                   TokenStore │        │ Navigator
//	                              ▼        ▼
//	                       (memory, file, redis)
//
// # Usage
//
//	store := session.New(
//	    session.WithTokenStore(fileStore),
//	    session.WithNavigator(router),
//	)
//	client, err := store.Connect("http://localhost:8080/api/v1")
//	if err != nil {
//	    // handle error
//	}
//	if err := store.Restore(ctx); err != nil {
//	    // durable storage unavailable
//	}
//
//	if err := store.Login(ctx, "alice", "secret"); err != nil {
//	    // show the message from *session.LoginError
//	}
//
// # Side effects
//
// CheckAuth and Profile are effectful reads: any failure, transport or auth
// alike, invokes Logout, which clears the session, removes the durable entry
// and navigates to the login route. Callers must treat a false/error result
// as a possible global state change, and tests assert both the return value
// and the mutation.
//
// # Concurrency
//
// The Store is safe for concurrent use; a mutex serializes every mutation.
// Overlapping CheckAuth calls may race, which is accepted: given the same
// credential both converge to the same outcome, and on failure both converge
// to the logged-out state.
package session
