package identity

import (
	"strings"

	"github.com/keltoummalouki/talenthub/pkg/token"
)

const bearerPrefix = "Bearer "

// Resolver turns a raw Authorization header value into an optional Identity.
type Resolver struct {
	codec *token.Codec
}

// NewResolver creates a resolver backed by the given credential codec.
func NewResolver(codec *token.Codec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve returns the identity encoded in the header value, or nil when no
// credential is present or the credential fails verification for any reason.
// It never returns an error: a bad credential degrades to anonymous, and a
// later guard check decides whether that matters for the operation.
func (r *Resolver) Resolve(headerValue string) *Identity {
	if headerValue == "" {
		return nil
	}

	raw := strings.TrimPrefix(headerValue, bearerPrefix)

	claims, err := r.codec.Verify(raw)
	if err != nil {
		return nil
	}

	// The role is kept verbatim, recognized or not. A verified caller with
	// an insufficient role must fail authorization, not authentication.
	return &Identity{
		SubjectID: claims.SubjectID,
		Username:  claims.Username,
		Role:      claims.Role,
	}
}
