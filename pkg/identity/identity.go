package identity

import (
	"context"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity is the resolved claims for the current request. An absent
// identity (anonymous caller) is a valid, first-class state, represented by
// the identity simply not being in the request context.
//
// Role is carried verbatim from the verified credential. A role outside the
// recognized set still yields an identity; whether that role is sufficient
// is decided per operation by RequireRole.
type Identity struct {
	SubjectID string `json:"subjectId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// HasRole reports whether the identity's role names the given recognized
// role.
func (id *Identity) HasRole(role Role) bool {
	parsed, err := RoleString(id.Role)
	return err == nil && parsed == role
}

// Get retrieves the Identity from a request context. ok is false for
// anonymous requests.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores an Identity in a request context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
