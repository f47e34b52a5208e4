// Package validate checks lead contact fields before enrichment so the
// pipeline does not spend scrape budget on rows with unusable data.
package validate

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	urlRe = regexp.MustCompile(`(?i)^https?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9\-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)
)

// Email reports whether the address is syntactically plausible.
func Email(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}

// URL reports whether the string looks like an http(s) URL with a real
// host part.
func URL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	return urlRe.MatchString(raw)
}

// Phone reports whether the number parses as a valid phone number.
// Numbers without a country code are interpreted against defaultRegion
// (pass "US" for domestic lead lists).
func Phone(raw, defaultRegion string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// FormatPhone normalizes a valid number to E.164 ("+12145550147"). The
// input is returned unchanged when it does not parse.
func FormatPhone(raw, defaultRegion string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
