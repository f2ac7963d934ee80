package navguard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panelkit/panelkit/pkg/logger"
)

// SessionChecker is the slice of the session store the guard consults.
// Token is a cheap presence check; CheckAuth validates the credential against
// the server and is an effectful read (failure clears the session).
type SessionChecker interface {
	Token() string
	CheckAuth(ctx context.Context) bool
}

// Action is the outcome kind of a guard decision.
type Action int

const (
	// ActionProceed lets the transition continue to its target.
	ActionProceed Action = iota
	// ActionRedirect aborts the transition and redirects to Decision.Target.
	ActionRedirect
)

// Decision is the guard's verdict on one attempted transition.
type Decision struct {
	Action Action
	Target string
}

// IsRedirect reports whether the transition was aborted in favor of Target.
func (d Decision) IsRedirect() bool {
	return d.Action == ActionRedirect
}

func proceed() Decision {
	return Decision{Action: ActionProceed}
}

func redirectTo(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// Guard gates route transitions on session validity. It holds no state of its
// own between decisions: each decision is a function of the target route's
// metadata and the current session. A mutex serializes decisions so one
// pending transition resolves before the next is evaluated, since CheckAuth
// suspends on the network.
type Guard struct {
	mu        sync.Mutex
	session   SessionChecker
	loginPath string
	homePath  string
	log       *slog.Logger
}

// New creates a guard over the given session checker.
func New(session SessionChecker, opts ...Option) *Guard {
	g := &Guard{
		session:   session,
		loginPath: defaultLoginPath,
		homePath:  defaultHomePath,
		log:       logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Decide evaluates the transition rules in order; the first match wins:
//
//  1. Target requires auth, no credential: redirect to the login path.
//  2. Target requires auth, credential present: validate with CheckAuth;
//     invalid redirects to the login path, valid proceeds.
//  3. Target is the login page while a credential is present: redirect to
//     the default landing path, so login never loops onto itself.
//  4. Otherwise proceed unchanged.
//
// This is the only place CheckAuth is invoked on navigation.
func (g *Guard) Decide(ctx context.Context, target Route) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if target.RequiresAuth {
		if g.session.Token() == "" {
			g.log.DebugContext(ctx, "no credential, redirecting to login", logger.Route(target.Path))
			return redirectTo(g.loginPath)
		}

		if !g.session.CheckAuth(ctx) {
			g.log.DebugContext(ctx, "credential invalid, redirecting to login", logger.Route(target.Path))
			return redirectTo(g.loginPath)
		}

		return proceed()
	}

	if target.Path == g.loginPath && g.session.Token() != "" {
		g.log.DebugContext(ctx, "already authenticated, redirecting away from login", logger.Route(g.homePath))
		return redirectTo(g.homePath)
	}

	return proceed()
}
