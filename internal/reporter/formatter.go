package reporter

import (
	"fmt"
	"time"
)

// Returns "1 <word>" or "<n> <word>s".
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func tests(n int) string {
	return plural(n, "test")
}

func testSuites(n int) string {
	return plural(n, "test suite")
}

// Whole milliseconds, truncated toward zero.
func millis(d time.Duration) int64 {
	return d.Milliseconds()
}
