package client

import (
	"context"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
)

// State of the client session.
type State int

const (
	StateUnauthenticated State = iota
	StateChecking
	StateAuthenticated
	StateAccessDenied
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAccessDenied:
		return "access_denied"
	default:
		return "unknown"
	}
}

// View is the dashboard a session's role dispatches to. Exactly one view is
// active per role; a role string the client does not recognize lands on the
// access-denied view, which offers only logout.
type View int

const (
	ViewLogin View = iota
	ViewAdminDashboard
	ViewUserDashboard
	ViewOwnerDashboard
	ViewAccessDenied
)

// Session drives the authentication state machine:
// Unauthenticated -> Checking -> Authenticated(role) | Unauthenticated.
type Session struct {
	api   *Client
	state State
	role  string
}

func NewSession(api *Client) *Session {
	return &Session{api: api, state: StateUnauthenticated}
}

func (s *Session) State() State { return s.state }
func (s *Session) Role() string { return s.role }

// Login authenticates and moves straight to Authenticated on success.
func (s *Session) Login(ctx context.Context, email, password string) error {
	role, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.state = StateUnauthenticated
		return err
	}
	s.role = role
	s.state = StateAuthenticated
	return nil
}

// Resume restores a stored token: it transitions to Checking and probes a
// gated endpoint. Any non-success answer discards the token and falls back
// to Unauthenticated; there is no dedicated verification endpoint.
func (s *Session) Resume(ctx context.Context, token, role string) State {
	if token == "" {
		s.state = StateUnauthenticated
		return s.state
	}
	s.state = StateChecking
	s.api.SetToken(token)
	if err := s.api.ProbeAuth(ctx); err != nil {
		s.Logout()
		return s.state
	}
	s.role = role
	s.state = StateAuthenticated
	return s.state
}

// Logout discards the token and returns to Unauthenticated.
func (s *Session) Logout() {
	s.api.SetToken("")
	s.role = ""
	s.state = StateUnauthenticated
}

// View dispatches the current state and role to exactly one view.
func (s *Session) View() View {
	if s.state != StateAuthenticated {
		if s.state == StateAccessDenied {
			return ViewAccessDenied
		}
		return ViewLogin
	}
	switch s.role {
	case entity.RoleAdmin:
		return ViewAdminDashboard
	case entity.RoleUser:
		return ViewUserDashboard
	case entity.RoleStoreOwner:
		return ViewOwnerDashboard
	default:
		// Never silently treat an unknown role as one of the known three.
		s.state = StateAccessDenied
		return ViewAccessDenied
	}
}
