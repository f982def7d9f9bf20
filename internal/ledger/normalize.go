package ledger

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText trims surrounding whitespace and applies Unicode NFC
// normalization. Customer lookup matches by exact name, so the same name
// typed with combining characters must hit the same row.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
