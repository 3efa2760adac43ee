// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a display name. Used by the admin
// handlers when a slug is not supplied explicitly.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = hyphenCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
