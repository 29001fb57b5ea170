package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput strips every HTML tag but keeps the text content.
// Used on names, descriptions and other short tenant-supplied text
// before it is stored.
func SanitizeInput(input string) string {
	cleaned := strictPolicy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
