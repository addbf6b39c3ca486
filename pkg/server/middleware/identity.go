package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/keltoummalouki/talenthub/pkg/identity"
)

// Identity returns middleware that resolves the Authorization header into
// an identity and stores it in the request context. Requests without a
// usable credential pass through anonymously; rejection is left to the
// handlers that need an identity.
func Identity(resolver *identity.Resolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := resolver.Resolve(r.Header.Get("Authorization")); id != nil {
				r = r.WithContext(identity.Set(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
