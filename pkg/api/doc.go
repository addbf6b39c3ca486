// Package api defines the error taxonomy exposed to API callers.
//
// Every application-level failure is one of a small set of typed kinds
// (UNAUTHENTICATED, FORBIDDEN, NOT_FOUND, BAD_USER_INPUT) plus a generic
// INTERNAL_SERVER_ERROR for everything else. These are expected outcomes,
// not defects; handlers translate them to HTTP statuses and the JSON shape
//
//	{"message": "...", "extensions": {"code": "..."}}
//
// Internal failure detail (storage driver errors, stack traces) is never
// included in the caller-visible message.
package api
