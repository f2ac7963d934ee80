// Package navguard gates view transitions on session validity, so protected
// views are never rendered without a valid credential.
//
// A Guard is evaluated before every route transition. It keeps no persistent
// state: each decision is a pure function of the target route's static
// metadata and the current session, re-evaluated on every transition. Routes
// are declared in code or loaded from a YAML table via LoadRoutes.
//
// # Decision rules
//
// Evaluated in order, first match wins:
//
//  1. Target requires auth and no credential is present: redirect to login.
//  2. Target requires auth and a credential is present: CheckAuth decides;
//     invalid redirects to login, valid proceeds.
//  3. Target is the login page while authenticated: redirect to the landing
//     view, preventing a login-to-login loop.
//  4. Otherwise proceed.
//
// Rule 2 suspends on the network. The guard serializes decisions, holding the
// pending transition until CheckAuth resolves, so no other navigation can
// interleave into the same decision.
//
// # Usage
//
//	guard := navguard.New(store,
//	    navguard.WithLoginPath("/login"),
//	    navguard.WithHomePath("/dashboard"),
//	)
//
//	route, _ := table.Lookup("/users")
//	switch d := guard.Decide(ctx, route); d.Action {
//	case navguard.ActionRedirect:
//	    router.NavigateTo(d.Target)
//	case navguard.ActionProceed:
//	    render(route)
//	}
package navguard
