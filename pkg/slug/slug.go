// Package slug derives canonical skill slugs. The transformation must stay
// byte-identical to what the existing skill table was populated with:
// lowercase, internal whitespace runs collapsed to single hyphens.
package slug

import "strings"

// Make converts a skill name to its canonical slug.
// "Machine Learning" -> "machine-learning".
func Make(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "-")
}

// Normalize trims and casefolds a name for duplicate detection.
// "  Node.js " and "node.js" normalize to the same string.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
