package authz

import "testing"

func user(role string) *SessionUser {
	return &SessionUser{ID: "u1", Name: "Test", Email: "test@example.com", Role: role}
}

func TestHomeForRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{RoleAdmin, AdminHome},
		{RoleManager, ManagerHome},
		{RoleUser, UserHome},
		{"", UserHome},
		{"unknown", UserHome},
	}
	for _, tt := range tests {
		if got := HomeForRole(tt.role); got != tt.want {
			t.Errorf("HomeForRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestAuthorizePendingSession(t *testing.T) {
	d := Authorize(Session{Pending: true}, RoleAdmin)
	if d.State != StateChecking {
		t.Errorf("pending session: got state %v, want StateChecking", d.State)
	}
}

func TestAuthorizeNoSession(t *testing.T) {
	d := Authorize(Session{}, RoleAdmin)
	if d.State != StateUnauthenticated {
		t.Errorf("missing session: got state %v, want StateUnauthenticated", d.State)
	}
	if d.Target != LoginPath {
		t.Errorf("missing session: got target %q, want %q", d.Target, LoginPath)
	}
}

func TestAuthorizeMatchingRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleManager, RoleUser} {
		d := Authorize(Session{User: user(role)}, role)
		if d.State != StateAuthorized {
			t.Errorf("role %q in its own shell: got state %v, want StateAuthorized", role, d.State)
		}
	}
}

func TestAuthorizeWrongRoleRedirectsHome(t *testing.T) {
	tests := []struct {
		role     string
		required string
		target   string
	}{
		{RoleManager, RoleAdmin, ManagerHome},
		{RoleUser, RoleAdmin, UserHome},
		{RoleAdmin, RoleUser, AdminHome},
		{RoleAdmin, RoleManager, AdminHome},
		{RoleUser, RoleManager, UserHome},
	}
	for _, tt := range tests {
		d := Authorize(Session{User: user(tt.role)}, tt.required)
		if d.State != StateRedirect {
			t.Errorf("role %q requiring %q: got state %v, want StateRedirect", tt.role, tt.required, d.State)
		}
		if d.Target != tt.target {
			t.Errorf("role %q requiring %q: got target %q, want %q", tt.role, tt.required, d.Target, tt.target)
		}
	}
}

func TestAuthorizeEmptyRoleTreatedAsUser(t *testing.T) {
	d := Authorize(Session{User: user("")}, RoleUser)
	if d.State != StateAuthorized {
		t.Errorf("empty role in user shell: got state %v, want StateAuthorized", d.State)
	}

	d = Authorize(Session{User: user("")}, RoleAdmin)
	if d.State != StateRedirect || d.Target != UserHome {
		t.Errorf("empty role in admin shell: got %+v, want redirect to %q", d, UserHome)
	}
}
