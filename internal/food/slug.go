package food

import "strings"

// Slug derives the route identifier for a food name: lowercase, with every
// space replaced by a hyphen. Other characters pass through untouched, so
// Slug(Slug(x)) == Slug(x).
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Summarize projects records into selectable summaries, keeping source
// order. Records whose names share a slug produce duplicate identifiers.
func Summarize(records []Record) []Summary {
	out := make([]Summary, 0, len(records))
	for _, r := range records {
		out = append(out, Summary{
			Identifier:   Slug(r.Name),
			DisplayLabel: r.Name,
		})
	}
	return out
}

// Lookup returns the first summary with the given identifier.
func Lookup(options []Summary, identifier string) (Summary, bool) {
	if identifier == "" {
		return Summary{}, false
	}
	for _, o := range options {
		if o.Identifier == identifier {
			return o, true
		}
	}
	return Summary{}, false
}
