// Package session owns the process-wide authentication state. All reads of
// "who is logged in" go through the Store; all mutation funnels through
// Restore, ApplyLoginResponse and Logout.
package session

import (
	"context"
	"strings"
)

// Role is the normalized authorization tier of the current actor.
type Role string

const (
	RoleNone      Role = ""
	RoleVolunteer Role = "VOLUNTEER"
	RoleNgo       Role = "NGO"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole matches a server-supplied role string against the closed Role
// set, case-insensitively. Anything unrecognized maps to RoleNone.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleVolunteer):
		return RoleVolunteer
	case string(RoleNgo):
		return RoleNgo
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleNone
	}
}

// UserSummary is a best-effort profile snapshot; it may be stale relative to
// the backend.
type UserSummary struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Session is an immutable snapshot of the authentication state.
// Role is RoleNone and User is nil whenever Token is empty.
type Session struct {
	Token        string
	Role         Role
	User         *UserSummary
	Initializing bool
}

// Authenticated reports whether a bearer credential is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// LoginResponse is the heterogeneous shape returned by the backend's login
// and registration endpoints. Direct login carries profile detail;
// post-registration responses may carry only a token and a user type.
type LoginResponse struct {
	Token    string `json:"token,omitempty"`
	UserType string `json:"userType,omitempty"`
	Role     string `json:"role,omitempty"`
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Profile is the backend's session-resolution payload.
type Profile struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Backend resolves the profile behind a bearer token. Implemented by the
// client package's AccountAPI.
type Backend interface {
	CurrentUser(ctx context.Context, token string) (*Profile, error)
}
