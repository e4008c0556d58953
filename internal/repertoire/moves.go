package repertoire

import (
	"regexp"
	"strings"
)

// moveNumberRe matches move-number markers like "1." or "12.".
var moveNumberRe = regexp.MustCompile(`\d+\.`)

// TokenizeMoves splits numbered algebraic move text into its ordered plies.
// Move-number markers are stripped, whitespace is collapsed and empty
// fragments dropped. Malformed input yields a possibly-empty token list
// rather than an error; the compiled-in repertoire is well formed.
func TokenizeMoves(raw string) []string {
	cleaned := moveNumberRe.ReplaceAllString(raw, "")
	return strings.Fields(cleaned)
}
