// Package identity provides authenticated identity management for requests.
//
// An Identity is the resolved set of credential claims for one inbound
// operation: subject ID, username and role. It lives in the request context
// and is never persisted or shared across requests.
//
// # Resolution
//
// The Resolver turns the raw Authorization header into an optional Identity.
// Its contract is total: any verification failure (missing header, malformed
// token, bad signature, expiry) yields a nil identity rather than an error,
// so authentication failure degrades to "anonymous" instead of crashing the
// request pipeline. A verified credential always resolves, whatever its
// role says.
//
// # Guards
//
// Require and RequireRole are the authorization checks invoked by mutation
// handlers. They return the typed api errors UNAUTHENTICATED and FORBIDDEN:
// anonymous callers fail with the former, authenticated callers whose role
// is not recognized or not allowed fail with the latter. Read operations
// never call them; portfolio content is publicly browsable and only
// curation is privileged.
package identity
