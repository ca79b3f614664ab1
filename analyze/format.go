package analyze

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the xxhash of content in hex. Reports of identical
// text share a hash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// TruncateSource shortens a source for display, keeping the end which is
// more informative.
func TruncateSource(source string, maxLen int) string {
	runes := []rune(source)
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return string(runes[:min(len(runes), maxLen)])
	}
	if len(runes) <= maxLen {
		return source
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
