package course

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a name into a URL-safe id fragment: "Brampton Park Golf Club"
// becomes "brampton-park-golf-club". Diacritics are folded first.
func Slug(name string) string {
	slug := nonSlugChars.ReplaceAllString(fold(name), "-")
	return strings.Trim(slug, "-")
}
