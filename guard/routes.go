package guard

import "github.com/adarsh5347/impacthub-client/session"

// Destination names owned by the UI shell's router. The guard only knows
// their authorization requirements.
const (
	DestLanding            = "home"
	DestLogin              = "login"
	DestAbout              = "about"
	DestRegisterVolunteer  = "register-volunteer"
	DestRegisterNgo        = "register-ngo"
	DestNgoDirectory       = "ngos"
	DestNgoProfile         = "ngo-profile"
	DestProjectDirectory   = "projects"
	DestProjectDetail      = "project-detail"
	DestVolunteerDashboard = "volunteer-dashboard"
	DestNgoPanel           = "ngo-panel"
	DestAdminHome          = "admin"
	DestAdminNgos          = "admin-ngos"
	DestAdminVolunteers    = "admin-volunteers"
)

type route struct {
	// requires is the role a visitor must hold; RoleNone means public.
	requires session.Role
	// adminRestricted marks the destinations an admin is allowed to see.
	// Everything else force-reroutes an admin to the admin home.
	adminRestricted bool
	// ngoPublicSurface marks public views of NGO-owned content; an NGO
	// actor visiting one is rerouted to its own management panel.
	ngoPublicSurface bool
}

var registry = map[string]route{
	DestLanding:            {},
	DestLogin:              {},
	DestAbout:              {},
	DestRegisterVolunteer:  {},
	DestRegisterNgo:        {},
	DestNgoDirectory:       {},
	DestNgoProfile:         {ngoPublicSurface: true},
	DestProjectDirectory:   {},
	DestProjectDetail:      {ngoPublicSurface: true},
	DestVolunteerDashboard: {requires: session.RoleVolunteer},
	DestNgoPanel:           {requires: session.RoleNgo},
	DestAdminHome:          {requires: session.RoleAdmin, adminRestricted: true},
	DestAdminNgos:          {requires: session.RoleAdmin, adminRestricted: true},
	DestAdminVolunteers:    {requires: session.RoleAdmin, adminRestricted: true},
}

// Known reports whether the router registered a destination under this name.
func Known(destination string) bool {
	_, ok := registry[destination]
	return ok
}
