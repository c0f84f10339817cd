package project

import "strings"

// Slugify converts a free-text description into a filesystem-safe slug.
// Example: "Add Login Button!" → "add-login-button"
//
// Rules:
//   - Lowercase
//   - Spaces and underscores become hyphens
//   - Characters outside [a-z0-9-] are removed
//   - Consecutive hyphens are collapsed
//   - Leading/trailing hyphens are trimmed
func Slugify(description string) string {
	s := strings.ToLower(description)

	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
