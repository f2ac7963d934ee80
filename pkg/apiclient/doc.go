// Package apiclient provides a JSON HTTP client for the admin panel API with
// credential injection and uniform error translation.
//
// This is a low-level utility package that handles the mechanics of talking
// to the API without session or business logic. The session store in
// pkg/session owns the credential and plugs into the client through the
// TokenSource and ExpiryHandler interfaces; typed service wrappers live in
// pkg/admin and build on top of this foundation.
//
// # Key Features
//
// - Single shared *http.Client with connection pooling
// - Bearer credential injection when a token is present
// - HTTP 401 reserved for credential expiry: triggers the session-expired
//   side effect and fails with ErrSessionExpired
// - Other non-2xx statuses become *RequestError with the server message
// - Network and decode failures become ErrTransport; no hidden retry policy
// - Upload variant that delegates Content-Type to the caller for multipart
//
// # Basic Usage
//
//	client, err := apiclient.New("http://localhost:8080/api/v1",
//	    apiclient.WithTokenSource(store),
//	    apiclient.WithExpiryHandler(store),
//	)
//	if err != nil {
//	    // handle error
//	}
//
//	var user User
//	err = client.Get(ctx, "/users/1", &user)
//
// # Error Handling
//
// Callers branch on the error kind:
//
//	switch {
//	case apiclient.IsSessionExpired(err):
//	    // session already cleared, redirect handled by the store
//	case errors.As(err, &reqErr):
//	    // show reqErr.Message to the user
//	case errors.Is(err, apiclient.ErrTransport):
//	    // network trouble, nothing was assumed about the response
//	}
//
// # Concurrency
//
// The client is safe for concurrent use. Each call is independent; no
// ordering is enforced across in-flight calls, and no call is retried or
// cancelled beyond its context.
package apiclient
