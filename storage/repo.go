// Package storage defines the client-local key/value store the session layer
// persists into. The store is a cache, not a source of truth: anything read
// from it is re-validated against the backend during session restore.
package storage

// Keys used by the session layer. KeyToken is canonical; KeyLegacyToken is a
// duplicate kept readable by older shells. At most one of the three role
// snapshot keys is present at a time.
const (
	KeyToken       = "token"
	KeyLegacyToken = "jwtToken"
	KeyVolunteer   = "currentVolunteer"
	KeyNGO         = "currentNGO"
	KeyAdmin       = "currentAdmin"
)

// Repo is the interface for client-local key/value storage operations.
type Repo interface {
	// Get retrieves a value; the bool reports whether the key was present.
	Get(key string) (string, bool)

	// Set stores a value under a key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(keys ...string) error
}

// SessionKeys returns every key the session layer may have written, in a
// stable order. Logout deletes all of them.
func SessionKeys() []string {
	return []string{KeyToken, KeyLegacyToken, KeyVolunteer, KeyNGO, KeyAdmin}
}

// RoleSnapshotKeys returns the three mutually exclusive role snapshot keys.
func RoleSnapshotKeys() []string {
	return []string{KeyVolunteer, KeyNGO, KeyAdmin}
}
