// Package guard decides what happens when a navigation intent occurs. It is
// pure and never errors; the UI shell's router acts on the returned Decision.
package guard

import (
	"fmt"

	"github.com/adarsh5347/impacthub-client/session"
)

// Action is the kind of decision the guard can make.
type Action int

const (
	// ActionDefer means the session is still resolving; make no
	// navigation decision yet.
	ActionDefer Action = iota
	ActionRender
	ActionRedirectToLogin
	ActionForceReroute
)

// Intent is a requested destination plus optional parameters. Produced by a
// UI action, consumed once.
type Intent struct {
	Destination string
	Params      map[string]string
}

// Decision tells the router what to do with an Intent.
type Decision struct {
	Action      Action
	Destination string
	Params      map[string]string

	// RedirectToLogin detail: a message for the login screen and the role
	// tab it should pre-select.
	Message  string
	RoleHint session.Role

	// Reload forces a full reload instead of an in-process transition.
	Reload bool
}

// Decide maps (intent, session) to a Decision. Rules are evaluated in
// precedence order; an unrecognized destination falls back to the landing
// destination instead of erroring.
func Decide(intent Intent, s session.Session) Decision {
	r, ok := registry[intent.Destination]
	if !ok {
		intent = Intent{Destination: DestLanding}
		r = registry[DestLanding]
	}

	if s.Initializing {
		return Decision{Action: ActionDefer}
	}

	role := s.Role

	// An authenticated admin is never shown non-admin screens, even via
	// stale links or history navigation.
	if role == session.RoleAdmin && !r.adminRestricted {
		return reroute(DestAdminHome)
	}

	if r.requires == session.RoleVolunteer && role != session.RoleVolunteer {
		return redirectToLogin(session.RoleVolunteer)
	}
	if r.requires == session.RoleNgo && role != session.RoleNgo {
		return redirectToLogin(session.RoleNgo)
	}

	// An NGO actor viewing its own public surfaces is sent to the
	// management panel instead.
	if r.ngoPublicSurface && role == session.RoleNgo {
		return reroute(DestNgoPanel)
	}

	if r.requires == session.RoleAdmin && role != session.RoleAdmin {
		return redirectToLogin(session.RoleAdmin)
	}

	return Decision{
		Action:      ActionRender,
		Destination: intent.Destination,
		Params:      intent.Params,
	}
}

// OnHistoryNavigation runs when browser history moves back or forward. For
// an admin session it demands a full reload so a stale non-admin view can
// never be rendered from history; otherwise it decides nothing.
func OnHistoryNavigation(s session.Session) Decision {
	if s.Initializing || s.Role != session.RoleAdmin {
		return Decision{Action: ActionDefer}
	}
	return Decision{
		Action:      ActionForceReroute,
		Destination: DestAdminHome,
		Reload:      true,
	}
}

func reroute(destination string) Decision {
	return Decision{Action: ActionForceReroute, Destination: destination}
}

func redirectToLogin(hint session.Role) Decision {
	var label string
	switch hint {
	case session.RoleVolunteer:
		label = "volunteer"
	case session.RoleNgo:
		label = "NGO"
	case session.RoleAdmin:
		label = "administrator"
	}
	return Decision{
		Action:      ActionRedirectToLogin,
		Destination: DestLogin,
		Message:     fmt.Sprintf("Please sign in as a %s to continue", label),
		RoleHint:    hint,
	}
}
