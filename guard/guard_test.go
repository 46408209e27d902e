package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adarsh5347/impacthub-client/guard"
	"github.com/adarsh5347/impacthub-client/session"
)

func anonymous() session.Session {
	return session.Session{}
}

func as(role session.Role) session.Session {
	return session.Session{Token: "t", Role: role}
}

func TestDecide_DefersWhileInitializing(t *testing.T) {
	d := guard.Decide(guard.Intent{Destination: guard.DestVolunteerDashboard}, session.Session{Initializing: true})
	require.Equal(t, guard.ActionDefer, d.Action)
}

func TestDecide_PublicDestinations(t *testing.T) {
	for _, dest := range []string{guard.DestLanding, guard.DestLogin, guard.DestAbout, guard.DestNgoDirectory, guard.DestProjectDirectory} {
		t.Run(dest, func(t *testing.T) {
			d := guard.Decide(guard.Intent{Destination: dest}, anonymous())
			require.Equal(t, guard.ActionRender, d.Action)
			require.Equal(t, dest, d.Destination)
		})
	}
}

func TestDecide_VolunteerDashboard(t *testing.T) {
	t.Run("anonymous redirected with volunteer hint", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestVolunteerDashboard}, anonymous())
		require.Equal(t, guard.ActionRedirectToLogin, d.Action)
		require.Equal(t, guard.DestLogin, d.Destination)
		require.Equal(t, session.RoleVolunteer, d.RoleHint)
		require.NotEmpty(t, d.Message)
	})

	t.Run("ngo redirected with volunteer hint", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestVolunteerDashboard}, as(session.RoleNgo))
		require.Equal(t, guard.ActionRedirectToLogin, d.Action)
		require.Equal(t, session.RoleVolunteer, d.RoleHint)
	})

	t.Run("volunteer renders", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestVolunteerDashboard}, as(session.RoleVolunteer))
		require.Equal(t, guard.ActionRender, d.Action)
		require.Equal(t, guard.DestVolunteerDashboard, d.Destination)
	})
}

func TestDecide_NgoPanel(t *testing.T) {
	t.Run("anonymous redirected with ngo hint", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestNgoPanel}, anonymous())
		require.Equal(t, guard.ActionRedirectToLogin, d.Action)
		require.Equal(t, session.RoleNgo, d.RoleHint)
	})

	t.Run("ngo renders", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestNgoPanel}, as(session.RoleNgo))
		require.Equal(t, guard.ActionRender, d.Action)
	})
}

func TestDecide_AdminCapture(t *testing.T) {
	adminDestinations := map[string]bool{
		guard.DestAdminHome:       true,
		guard.DestAdminNgos:       true,
		guard.DestAdminVolunteers: true,
	}

	// An admin is force-rerouted away from every non-admin destination.
	for _, dest := range []string{
		guard.DestLanding, guard.DestLogin, guard.DestAbout,
		guard.DestRegisterVolunteer, guard.DestRegisterNgo,
		guard.DestNgoDirectory, guard.DestNgoProfile,
		guard.DestProjectDirectory, guard.DestProjectDetail,
		guard.DestVolunteerDashboard, guard.DestNgoPanel,
	} {
		t.Run("captured "+dest, func(t *testing.T) {
			require.False(t, adminDestinations[dest])
			d := guard.Decide(guard.Intent{Destination: dest}, as(session.RoleAdmin))
			require.Equal(t, guard.ActionForceReroute, d.Action)
			require.Equal(t, guard.DestAdminHome, d.Destination)
		})
	}

	for dest := range adminDestinations {
		t.Run("renders "+dest, func(t *testing.T) {
			d := guard.Decide(guard.Intent{Destination: dest}, as(session.RoleAdmin))
			require.Equal(t, guard.ActionRender, d.Action)
			require.Equal(t, dest, d.Destination)
		})
	}
}

func TestDecide_AdminDestinationsNeedAdmin(t *testing.T) {
	for _, role := range []session.Role{session.RoleNone, session.RoleVolunteer, session.RoleNgo} {
		s := session.Session{Role: role}
		if role != session.RoleNone {
			s.Token = "t"
		}
		d := guard.Decide(guard.Intent{Destination: guard.DestAdminNgos}, s)
		require.Equal(t, guard.ActionRedirectToLogin, d.Action, "role %q", role)
		require.Equal(t, session.RoleAdmin, d.RoleHint, "role %q", role)
	}
}

func TestDecide_NgoReroutedFromOwnPublicSurfaces(t *testing.T) {
	for _, dest := range []string{guard.DestNgoProfile, guard.DestProjectDetail} {
		t.Run(dest, func(t *testing.T) {
			d := guard.Decide(guard.Intent{Destination: dest}, as(session.RoleNgo))
			require.Equal(t, guard.ActionForceReroute, d.Action)
			require.Equal(t, guard.DestNgoPanel, d.Destination)
		})
	}

	t.Run("volunteer still sees public surfaces", func(t *testing.T) {
		d := guard.Decide(guard.Intent{Destination: guard.DestProjectDetail}, as(session.RoleVolunteer))
		require.Equal(t, guard.ActionRender, d.Action)
	})
}

func TestDecide_UnknownDestinationFallsBack(t *testing.T) {
	d := guard.Decide(guard.Intent{Destination: "no-such-view"}, anonymous())
	require.Equal(t, guard.ActionRender, d.Action)
	require.Equal(t, guard.DestLanding, d.Destination)

	// Unknown destinations never bypass the admin capture either.
	d = guard.Decide(guard.Intent{Destination: "no-such-view"}, as(session.RoleAdmin))
	require.Equal(t, guard.ActionForceReroute, d.Action)
	require.Equal(t, guard.DestAdminHome, d.Destination)
}

func TestDecide_ParamsPassedThrough(t *testing.T) {
	params := map[string]string{"id": "ngo-42"}
	d := guard.Decide(guard.Intent{Destination: guard.DestNgoProfile, Params: params}, anonymous())
	require.Equal(t, guard.ActionRender, d.Action)
	require.Equal(t, params, d.Params)
}

func TestOnHistoryNavigation(t *testing.T) {
	t.Run("admin forces a full reload", func(t *testing.T) {
		d := guard.OnHistoryNavigation(as(session.RoleAdmin))
		require.Equal(t, guard.ActionForceReroute, d.Action)
		require.Equal(t, guard.DestAdminHome, d.Destination)
		require.True(t, d.Reload)
	})

	t.Run("others are left alone", func(t *testing.T) {
		for _, s := range []session.Session{anonymous(), as(session.RoleVolunteer), as(session.RoleNgo), {Initializing: true}} {
			d := guard.OnHistoryNavigation(s)
			require.Equal(t, guard.ActionDefer, d.Action)
		}
	})
}

func TestKnown(t *testing.T) {
	require.True(t, guard.Known(guard.DestLanding))
	require.False(t, guard.Known("no-such-view"))
}
