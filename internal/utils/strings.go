package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail checks the basic local@domain.tld shape; it does not attempt RFC
// 5322 validation.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// SplitCSV splits a comma separated query value into trimmed, non-empty items.
func SplitCSV(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
