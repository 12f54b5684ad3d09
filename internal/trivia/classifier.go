package trivia

import (
	"regexp"
	"strings"
)

var (
	hexAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{10,}$`)
	letterPattern     = regexp.MustCompile(`[a-zA-Z]`)
)

// IsPlausibleName reports whether a value looks like a human-chosen project
// or artifact name, as opposed to a wallet address, hash or placeholder.
func IsPlausibleName(name string) bool {
	if hexAddressPattern.MatchString(name) {
		return false
	}
	if len(name) < 3 || len(name) > 40 {
		return false
	}
	if !letterPattern.MatchString(name) {
		return false
	}
	switch strings.ToLower(name) {
	case "unknown", "n/a", "none", "null":
		return false
	}
	return true
}
