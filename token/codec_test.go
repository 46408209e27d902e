package token_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adarsh5347/impacthub-client/token"
)

// makeToken builds an unsigned compact token around the given claims. The
// signature segment is garbage on purpose; nothing client-side verifies it.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	raw, err := json.Marshal(claims)
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return header + "." + payload + ".c2lnbmF0dXJl"
}

func TestDecodePayload_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"whitespace":         "   ",
		"no separators":      "notatoken",
		"one segment":        "abc.",
		"two segments":       "abc.def",
		"bad base64 payload": "eyJhbGciOiJIUzI1NiJ9.!!!not-base64!!!.sig",
		"payload not json": base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`)) +
			"." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			payload, ok := token.DecodePayload(raw)
			require.False(t, ok)
			require.Nil(t, payload)
		})
	}
}

func TestDecodePayload_Valid(t *testing.T) {
	raw := makeToken(t, map[string]any{"sub": "user-1", "roles": []string{"ROLE_NGO"}})

	payload, ok := token.DecodePayload(raw)
	require.True(t, ok)
	require.Equal(t, "user-1", payload["sub"])
}

func TestExtractRoles(t *testing.T) {
	t.Run("list claim", func(t *testing.T) {
		payload := map[string]any{"roles": []any{"ROLE_ADMIN", "ROLE_USER"}}
		require.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, token.ExtractRoles(payload))
	})

	t.Run("key precedence", func(t *testing.T) {
		payload := map[string]any{
			"scope": "read write",
			"roles": []any{"ROLE_NGO"},
		}
		require.Equal(t, []string{"ROLE_NGO"}, token.ExtractRoles(payload))
	})

	t.Run("single string role", func(t *testing.T) {
		payload := map[string]any{"role": "ADMIN"}
		require.Equal(t, []string{"ADMIN"}, token.ExtractRoles(payload))
	})

	t.Run("scope split on whitespace", func(t *testing.T) {
		payload := map[string]any{"scope": "profile ngo:read ngo:write"}
		require.Equal(t, []string{"profile", "ngo:read", "ngo:write"}, token.ExtractRoles(payload))
	})

	t.Run("split on commas", func(t *testing.T) {
		payload := map[string]any{"authorities": "ROLE_NGO, ROLE_USER"}
		require.Equal(t, []string{"ROLE_NGO", "ROLE_USER"}, token.ExtractRoles(payload))
	})

	t.Run("numeric elements stringified", func(t *testing.T) {
		payload := map[string]any{"roles": []any{"ROLE_ADMIN", float64(7)}}
		require.Equal(t, []string{"ROLE_ADMIN", "7"}, token.ExtractRoles(payload))
	})

	t.Run("no claim keys means no roles", func(t *testing.T) {
		payload := map[string]any{"sub": "user-1"}
		require.Empty(t, token.ExtractRoles(payload))
	})

	t.Run("present but unusable claim wins and yields nothing", func(t *testing.T) {
		payload := map[string]any{
			"roles": map[string]any{"weird": true},
			"role":  "ADMIN",
		}
		require.Empty(t, token.ExtractRoles(payload))
	})
}

func TestHasRole(t *testing.T) {
	t.Run("case-insensitive with ROLE_ prefix", func(t *testing.T) {
		for _, claim := range []string{"ROLE_ADMIN", "role_admin", "Role_Admin", "ADMIN", "admin"} {
			raw := makeToken(t, map[string]any{"roles": []any{claim}})
			require.True(t, token.HasRole(raw, "admin"), "claim %q", claim)
			require.True(t, token.HasRole(raw, "ADMIN"), "claim %q", claim)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		raw := makeToken(t, map[string]any{"roles": []any{"ROLE_NGO"}})
		require.False(t, token.HasRole(raw, "admin"))
	})

	t.Run("malformed token is never authorized", func(t *testing.T) {
		require.False(t, token.HasRole("broken.token", "admin"))
	})
}
