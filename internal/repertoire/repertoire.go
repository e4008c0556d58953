package repertoire

import "strings"

// Category groups openings the way the repertoire is studied: by the side
// played and, for Black, by White's first move.
type Category string

const (
	CategoryWhite     Category = "White Openings"
	CategoryBlackVsE4 Category = "Black vs 1.e4"
	CategoryBlackVsD4 Category = "Black vs 1.d4"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryWhite, CategoryBlackVsE4, CategoryBlackVsD4}
}

// CategoryOf classifies an opening by the repertoire's naming convention:
// a "White" prefix marks the White repertoire, the Caro-Kann defenses are the
// answer to 1.e4, everything else played as Black answers 1.d4.
func CategoryOf(o Opening) Category {
	if strings.HasPrefix(o.Name, "White") {
		return CategoryWhite
	}
	if strings.Contains(o.Name, "Caro-Kann") {
		return CategoryBlackVsE4
	}
	return CategoryBlackVsD4
}

// All returns every opening in seed order.
func All() []Opening {
	out := make([]Opening, len(openings))
	copy(out, openings)
	return out
}

// ByCategory returns the openings of one category in seed order.
func ByCategory(c Category) []Opening {
	var out []Opening
	for _, o := range openings {
		if CategoryOf(o) == c {
			out = append(out, o)
		}
	}
	return out
}

// Get looks an opening up by name.
func Get(name string) (Opening, bool) {
	for _, o := range openings {
		if o.Name == name {
			return o, true
		}
	}
	return Opening{}, false
}
