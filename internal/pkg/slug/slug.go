// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[^a-z0-9\s_-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
)

// Make normalizes a name into a slug: lowercase, strip characters outside
// [a-z0-9\s_-], collapse separator runs into a single hyphen, trim edge
// hyphens. Total and idempotent: Make(Make(s)) == Make(s) for any s.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = invalidChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
