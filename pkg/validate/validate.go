package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/keltoummalouki/talenthub/pkg/api"
)

// Date layouts accepted for startDate/endDate input, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a date input string accepted by the validation layer.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// violations collects one message per violated field constraint. All
// constraints for an entity are checked before the input is rejected, so
// the caller gets the full list in a single BAD_USER_INPUT error.
type violations struct {
	messages []string
}

func (v *violations) add(format string, args ...interface{}) {
	v.messages = append(v.messages, fmt.Sprintf(format, args...))
}

// minLen counts characters, not bytes, so multibyte input is measured the
// way the limit reads.
func (v *violations) minLen(field, value string, min int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		v.add("%s must be at least %d characters", field, min)
	}
}

func (v *violations) optionalMinLen(field string, value *string, min int) {
	if value != nil {
		v.minLen(field, *value, min)
	}
}

func (v *violations) minItems(field string, items []string, min int) {
	if len(items) < min {
		v.add("%s must contain at least %d item(s)", field, min)
	}
}

func (v *violations) enum(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

func (v *violations) optionalEnum(field, value string, allowed []string) {
	if value != "" {
		v.enum(field, value, allowed)
	}
}

// optionalURL accepts an absent or empty value; anything else must be an
// absolute http(s) URL.
func (v *violations) optionalURL(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.add("%s must be a valid URL", field)
	}
}

func (v *violations) email(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add("%s must be a valid email address", field)
	}
}

func (v *violations) optionalEmail(field string, value *string) {
	if value != nil {
		v.email(field, *value)
	}
}

func (v *violations) date(field, value string) {
	if value == "" {
		v.add("%s is required", field)
		return
	}
	if _, err := ParseDate(value); err != nil {
		v.add("%s must be a valid date", field)
	}
}

func (v *violations) optionalDate(field, value string) {
	if value == "" {
		return
	}
	if _, err := ParseDate(value); err != nil {
		v.add("%s must be a valid date", field)
	}
}

func (v *violations) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return api.BadUserInput("validation failed: "+strings.Join(v.messages, "; "), v.messages...)
}
