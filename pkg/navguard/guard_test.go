package navguard_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panelkit/panelkit/pkg/navguard"
)

// fakeSession scripts the session checker without a network.
type fakeSession struct {
	token      string
	checkValid bool
	checkCalls atomic.Int32
}

func (f *fakeSession) Token() string { return f.token }

func (f *fakeSession) CheckAuth(ctx context.Context) bool {
	f.checkCalls.Add(1)
	if !f.checkValid {
		// Mirrors the real store: a failed validation clears the session.
		f.token = ""
	}
	return f.checkValid
}

var (
	dashboardRoute = navguard.Route{Path: "/dashboard", Name: "dashboard", RequiresAuth: true}
	loginRoute     = navguard.Route{Path: "/login", Name: "login"}
	aboutRoute     = navguard.Route{Path: "/about", Name: "about"}
)

func TestGuard_Decide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		session        *fakeSession
		target         navguard.Route
		want           navguard.Decision
		wantCheckCalls int32
	}{
		{
			name:           "protected route without credential redirects to login",
			session:        &fakeSession{},
			target:         dashboardRoute,
			want:           navguard.Decision{Action: navguard.ActionRedirect, Target: "/login"},
			wantCheckCalls: 0,
		},
		{
			name:           "protected route with valid credential proceeds",
			session:        &fakeSession{token: "t1", checkValid: true},
			target:         dashboardRoute,
			want:           navguard.Decision{Action: navguard.ActionProceed},
			wantCheckCalls: 1,
		},
		{
			name:           "protected route with invalid credential redirects to login",
			session:        &fakeSession{token: "stale", checkValid: false},
			target:         dashboardRoute,
			want:           navguard.Decision{Action: navguard.ActionRedirect, Target: "/login"},
			wantCheckCalls: 1,
		},
		{
			name:           "login page while authenticated redirects home",
			session:        &fakeSession{token: "t1", checkValid: true},
			target:         loginRoute,
			want:           navguard.Decision{Action: navguard.ActionRedirect, Target: "/dashboard"},
			wantCheckCalls: 0,
		},
		{
			name:           "login page without credential proceeds",
			session:        &fakeSession{},
			target:         loginRoute,
			want:           navguard.Decision{Action: navguard.ActionProceed},
			wantCheckCalls: 0,
		},
		{
			name:           "public route proceeds without validation",
			session:        &fakeSession{},
			target:         aboutRoute,
			want:           navguard.Decision{Action: navguard.ActionProceed},
			wantCheckCalls: 0,
		},
		{
			name:           "public route proceeds even when authenticated",
			session:        &fakeSession{token: "t1", checkValid: true},
			target:         aboutRoute,
			want:           navguard.Decision{Action: navguard.ActionProceed},
			wantCheckCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			guard := navguard.New(tt.session)
			got := guard.Decide(context.Background(), tt.target)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCheckCalls, tt.session.checkCalls.Load(),
				"CheckAuth is invoked only for protected routes with a credential present")
		})
	}
}

func TestGuard_Decide_CustomPaths(t *testing.T) {
	t.Parallel()

	session := &fakeSession{token: "t1", checkValid: true}
	guard := navguard.New(session,
		navguard.WithLoginPath("/signin"),
		navguard.WithHomePath("/overview"),
	)

	got := guard.Decide(context.Background(), navguard.Route{Path: "/signin"})
	assert.Equal(t, navguard.Decision{Action: navguard.ActionRedirect, Target: "/overview"}, got)

	session.token = ""
	got = guard.Decide(context.Background(), navguard.Route{Path: "/overview", RequiresAuth: true})
	assert.Equal(t, navguard.Decision{Action: navguard.ActionRedirect, Target: "/signin"}, got)
}

func TestGuard_Decide_StatelessBetweenTransitions(t *testing.T) {
	t.Parallel()

	// The same guard re-evaluates session state on every transition.
	session := &fakeSession{token: "stale", checkValid: false}
	guard := navguard.New(session)

	first := guard.Decide(context.Background(), dashboardRoute)
	assert.True(t, first.IsRedirect())

	// Invalid credential was cleared; the next attempt short-circuits on the
	// presence check without another validation call.
	second := guard.Decide(context.Background(), dashboardRoute)
	assert.True(t, second.IsRedirect())
	assert.Equal(t, int32(1), session.checkCalls.Load())
}

func TestDecision_IsRedirect(t *testing.T) {
	t.Parallel()

	assert.False(t, navguard.Decision{Action: navguard.ActionProceed}.IsRedirect())
	assert.True(t, navguard.Decision{Action: navguard.ActionRedirect, Target: "/login"}.IsRedirect())
}
