package food

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// labelSource adapts a summary slice to fuzzy.Source.
type labelSource []Summary

func (s labelSource) String(i int) string { return s[i].DisplayLabel }
func (s labelSource) Len() int            { return len(s) }

// Filter returns the options whose label matches query, in source order.
// A label matches when it contains query case-insensitively or when query is
// a fuzzy subsequence of it. An empty query matches everything.
func Filter(options []Summary, query string) []Summary {
	if strings.TrimSpace(query) == "" {
		out := make([]Summary, len(options))
		copy(out, options)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(query)

	fuzzyHits := make(map[int]bool)
	for _, m := range fuzzy.FindFromNoSort(query, labelSource(options)) {
		fuzzyHits[m.Index] = true
	}

	out := make([]Summary, 0, len(options))
	for i, o := range options {
		if fuzzyHits[i] || strings.Contains(fold.String(o.DisplayLabel), needle) {
			out = append(out, o)
		}
	}
	return out
}
