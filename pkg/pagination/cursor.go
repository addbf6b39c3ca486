package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCursor is returned when an opaque cursor string cannot be
// decoded back into a sort position.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is an opaque, order-stable marker into a sorted collection. It
// encodes the full sort key (start date plus record ID as tiebreak), so a
// continuation is well-defined even if the record the cursor was taken
// from has since been deleted: comparison happens on the key, never on the
// row's continued existence.
type Cursor struct {
	StartDate time.Time
	ID        string
}

// Encode serializes the cursor into an opaque string.
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d:%s", c.StartDate.UnixMicro(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Decode parses an opaque cursor string. Any malformed input yields
// ErrInvalidCursor.
func Decode(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, ErrInvalidCursor
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	return Cursor{
		StartDate: time.UnixMicro(micros).UTC(),
		ID:        parts[1],
	}, nil
}
