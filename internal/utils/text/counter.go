// Package text provides small string helpers shared across packages.
package text

// CountRunes counts the Unicode characters (runes) in s, so that length limits
// on names and titles treat "Élan" and "Elan" alike.
//
// Examples:
//
//	CountRunes("Vogue")  // returns 5
//	CountRunes("Élan")   // returns 4, although len("Élan") is 5
//	CountRunes("")       // returns 0
func CountRunes(s string) int {
	return len([]rune(s))
}
