package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugMinLen = 3
	slugMaxLen = 50
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns    = regexp.MustCompile(`-+`)
	separatorRuns = regexp.MustCompile(`[\s_]+`)

	// strips combining marks after NFD decomposition ("taquería" → "taqueria")
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func foldAccents(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// GenerateSlug derives a URL slug from a restaurant name:
// "La Taquería" → "la-taqueria".
func GenerateSlug(name string) string {
	s := foldAccents(strings.ToLower(strings.TrimSpace(name)))
	s = separatorRuns.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > slugMaxLen {
		s = strings.Trim(s[:slugMaxLen], "-")
	}
	return s
}

// ValidateSlugFormat enforces the public slug contract: 3-50 chars,
// lowercase alphanumerics and single hyphens, no leading/trailing hyphen.
func ValidateSlugFormat(slug string) bool {
	if len(slug) < slugMinLen || len(slug) > slugMaxLen {
		return false
	}
	return slugPattern.MatchString(slug)
}

// NormalizeSlug cleans raw slug input, e.g. from a live form field.
func NormalizeSlug(slug string) string {
	s := foldAccents(strings.ToLower(strings.TrimSpace(slug)))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
