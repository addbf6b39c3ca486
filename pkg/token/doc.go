// Package token implements the signed credential codec.
//
// A credential is an HS256-signed JWT carrying {subject, username, role}
// plus issued-at and expiry timestamps. Validity is solely a function of
// the signature and the expiry; issued credentials are immutable and there
// is no revocation list.
package token
