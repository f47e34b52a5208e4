package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// headerStripper removes diacritics so "Téléphone" normalizes like "Telephone".
var headerStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader canonicalizes a spreadsheet column name: diacritics
// stripped, lowercased, with spaces and punctuation removed. "Business Name",
// "business_name", and "BusinessName" all normalize to "businessname".
func NormalizeHeader(h string) string {
	if stripped, _, err := transform.String(headerStripper, h); err == nil {
		h = stripped
	}

	var b strings.Builder
	b.Grow(len(h))
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
