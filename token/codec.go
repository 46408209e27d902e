// Package token inspects bearer tokens issued by the ImpactHub backend.
//
// Nothing in this package verifies a signature. Decoded claims are a display
// and navigation hint only; the backend rejects invalid credentials with a
// 401, which is the real authorization backstop (see the client package).
package token

import (
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/adarsh5347/impacthub-client/internal/utils"
)

// claimKeys are probed in order; the first key present wins.
var claimKeys = []string{"roles", "authorities", "role", "scope"}

// DecodePayload extracts the claims segment of a compact token without
// verifying it. Malformed, truncated or unparseable tokens yield (nil, false)
// so that a bad token can never break navigation.
func DecodePayload(raw string) (map[string]any, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	unverified, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, false
	}

	claims, ok := unverified.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, false
	}
	return map[string]any(claims), true
}

// ExtractRoles returns the role claims carried by a decoded payload. The
// claim may be a list (each element stringified) or a single string (split on
// whitespace and commas, the "scope" convention). A payload without any of
// the known claim keys yields an empty list; callers must treat that as
// "not authorized", never as a wildcard.
func ExtractRoles(payload map[string]any) []string {
	for _, key := range claimKeys {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []any:
			return utils.ToStringSlice(val)
		case []string:
			return val
		case string:
			return splitClaim(val)
		default:
			return []string{}
		}
	}
	return []string{}
}

// HasRole reports whether the token carries the named role. The check is
// case-insensitive and tolerates the conventional "ROLE_" claim prefix, so a
// token with "ROLE_ADMIN" satisfies HasRole(raw, "admin").
func HasRole(raw, role string) bool {
	payload, ok := DecodePayload(raw)
	if !ok {
		return false
	}
	want := normalizeRole(role)
	for _, claim := range ExtractRoles(payload) {
		if normalizeRole(claim) == want {
			return true
		}
	}
	return false
}

func normalizeRole(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "ROLE_")
}

func splitClaim(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
