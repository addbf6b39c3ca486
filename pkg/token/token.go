package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any credential that cannot be
// trusted: malformed string, bad signature, or expired. Callers get no
// partially-trusted claims alongside it.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity assertions embedded in a credential.
type Claims struct {
	SubjectID string
	Username  string
	Role      string
}

type signedClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies signed, time-bound credentials. It is a pure
// function of its secret, its TTL and the clock; it holds no server-side
// state and there is no revocation list.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a codec signing with the given secret. A non-positive ttl
// falls back to DefaultTTL.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock overrides the codec's clock. Intended for tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue produces a signed credential embedding the claims plus an absolute
// expiry computed from the configured TTL.
func (c *Codec) Issue(claims Claims) (string, error) {
	issuedAt := c.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{
		Username: claims.Username,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	})
	return tok.SignedString(c.secret)
}

// Verify returns the embedded claims if and only if the signature is valid
// against the codec's secret and the credential has not expired. Any other
// condition yields ErrInvalidToken.
func (c *Codec) Verify(raw string) (*Claims, error) {
	var parsed signedClaims
	tok, err := jwt.ParseWithClaims(
		raw,
		&parsed,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &Claims{
		SubjectID: parsed.Subject,
		Username:  parsed.Username,
		Role:      parsed.Role,
	}, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
