package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// Password only bounds length; strength rules are not part of the API contract.
// 72 bytes is the bcrypt input limit.
func Password(s string) bool {
	return len(s) >= 1 && len(s) <= 72
}

// Required trims and reports whether a field carries a value.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
