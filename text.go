package salience

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares extracted text for ranking: invalid UTF-8 removed,
// Unicode NFC, LF line endings, surrounding whitespace trimmed. Inner
// newlines are kept because they delimit sections.
func NormalizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
