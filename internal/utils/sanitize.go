package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every tag; shoppers and admins only ever send plain text.
var strict = bluemonday.StrictPolicy()

// SanitizeText strips markup from free-text input and trims whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

func SanitizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if clean := SanitizeText(v); clean != "" {
			out = append(out, clean)
		}
	}

	return out
}
