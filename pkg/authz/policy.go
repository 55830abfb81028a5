// Package authz is the single authorization policy shared by the API
// server and the client SDK: role names, per-role home routes, and the
// guard evaluated by every role-gated shell.
package authz

// Platform roles. Managers are tenant owners; the default role is the
// end user who books appointments.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Route targets for the three role-specific shells.
const (
	LoginPath   = "/login"
	AdminHome   = "/dashboard"
	ManagerHome = "/manager-dashboard"
	UserHome    = "/userDashboard"
)

// Session is the identity supplied by the auth provider. The provider
// itself is an external collaborator; this package only consumes it.
type Session struct {
	User    *SessionUser
	Pending bool
}

type SessionUser struct {
	ID    string
	Name  string
	Email string
	Image *string
	Role  string
}

// Decision states for a role-gated shell.
type State int

const (
	StateChecking State = iota
	StateAuthorized
	StateRedirect
	StateUnauthenticated
)

type Decision struct {
	State  State
	Target string
}

// HomeForRole maps a role to its home path. Unknown or empty roles are
// treated as end users.
func HomeForRole(role string) string {
	switch role {
	case RoleAdmin:
		return AdminHome
	case RoleManager:
		return ManagerHome
	default:
		return UserHome
	}
}

// Authorize evaluates a session against the role a shell requires.
// One policy for all three shells instead of three hand-rolled copies.
func Authorize(s Session, requiredRole string) Decision {
	if s.Pending {
		return Decision{State: StateChecking}
	}
	if s.User == nil {
		return Decision{State: StateUnauthenticated, Target: LoginPath}
	}
	role := s.User.Role
	if role == "" {
		role = RoleUser
	}
	if role != requiredRole {
		return Decision{State: StateRedirect, Target: HomeForRole(role)}
	}
	return Decision{State: StateAuthorized}
}
