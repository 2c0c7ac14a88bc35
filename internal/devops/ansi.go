package devops

import (
	"regexp"
)

var (
	// ANSI escape code cleaner
	ansiCleaner = regexp.MustCompile(`(\x9B|\x1B\[)[0-?]*[ -\/]*[@-~]`)
)

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiCleaner.ReplaceAllString(s, "")
}
