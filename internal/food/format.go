package food

import (
	"fmt"
	"strconv"
	"strings"
)

// Site name used in page titles.
const siteName = "Nutrispark"

// PageMeta is the title and description of a detail page.
type PageMeta struct {
	Title       string
	Description string
}

// NewPageMeta templates the detail page metadata from the route name.
func NewPageMeta(name string) PageMeta {
	return PageMeta{
		Title:       fmt.Sprintf("Discover %s - %s", name, siteName),
		Description: fmt.Sprintf("Learn all about the nutritional values of %s on Nutritech. Explore now", name),
	}
}

// JoinList renders a vitamin or mineral list. A nil list renders as "".
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// FormatValue renders v with the fewest digits that round-trip.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatGrams renders v followed by the gram unit.
func FormatGrams(v float64) string {
	return FormatValue(v) + "g"
}
