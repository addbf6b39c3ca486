package identity

import (
	"context"

	"github.com/keltoummalouki/talenthub/pkg/api"
)

// Require asserts that the request context carries an identity. It fails
// with an UNAUTHENTICATED error otherwise.
func Require(ctx context.Context) (*Identity, error) {
	id, ok := Get(ctx)
	if !ok {
		return nil, api.Unauthenticated("not authenticated")
	}
	return id, nil
}

// RequireRole asserts that the request context carries an identity whose
// role is one of allowed. With no roles given it defaults to RoleAdmin.
// It fails with UNAUTHENTICATED when there is no identity at all, and with
// FORBIDDEN when the identity's role is not allowed.
func RequireRole(ctx context.Context, allowed ...Role) (*Identity, error) {
	id, err := Require(ctx)
	if err != nil {
		return nil, err
	}

	if len(allowed) == 0 {
		allowed = []Role{RoleAdmin}
	}

	for _, role := range allowed {
		if id.HasRole(role) {
			return id, nil
		}
	}

	return nil, api.Forbidden("not authorized")
}
