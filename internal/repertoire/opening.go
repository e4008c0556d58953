package repertoire

import (
	"regexp"
	"strconv"
	"strings"
)

// Opening is one record of the fixed study repertoire. Records are immutable
// after load and identified by Name.
type Opening struct {
	// Name is the unique identifier, prefixed by the side it is played from
	// ("White - ..." or "Black - ...").
	Name string

	// Moves is the raw move text in numbered algebraic notation,
	// e.g. "1.e4 e5 2.Nf3 Nc6".
	Moves string

	// KeyIdeas are free-text annotations, most carrying a "Move <n>" tag.
	KeyIdeas []string

	// Plan is the free-text strategic plan for the opening.
	Plan string
}

// Tokens returns the opening's move sequence as individual plies.
func (o Opening) Tokens() []string {
	return TokenizeMoves(o.Moves)
}

// Side returns "White" or "Black" from the name prefix.
func (o Opening) Side() string {
	if strings.HasPrefix(o.Name, "Black") {
		return "Black"
	}
	return "White"
}

// ShortName returns the name without the side prefix.
func (o Opening) ShortName() string {
	if _, rest, ok := strings.Cut(o.Name, " - "); ok {
		return rest
	}
	return o.Name
}

// annotationTagRe captures the number (or dash range) of a "Move <n>" /
// "Moves <a>-<b>" tag inside a key-idea string.
var annotationTagRe = regexp.MustCompile(`Moves? (\d+)(?:-(\d+))?`)

// AnnotationForPly returns the first key idea whose move tag covers the given
// 1-based ply number. The annotation corpus tags full moves in prose while
// callers pass ply numbers; the lookup is best-effort by design and a miss is
// a normal result.
func (o Opening) AnnotationForPly(ply int) (string, bool) {
	for _, idea := range o.KeyIdeas {
		m := annotationTagRe.FindStringSubmatch(idea)
		if m == nil {
			continue
		}
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		hi := lo
		if m[2] != "" {
			if h, err := strconv.Atoi(m[2]); err == nil {
				hi = h
			}
		}
		if ply >= lo && ply <= hi {
			return idea, true
		}
	}
	return "", false
}
