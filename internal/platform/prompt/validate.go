package prompt

import "regexp"

var (
	studentIDPattern = regexp.MustCompile(`^[0-9]{9}$`)
)

// ValidStudentID reports whether id is exactly nine digits.
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// ValidToken reports whether the bearer token has a plausible length. Tokens
// are opaque strings of 25 to 35 characters.
func ValidToken(token string) bool {
	return len(token) >= 25 && len(token) <= 35
}
