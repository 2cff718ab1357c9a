package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nutrispark/internal/food"
)

const (
	chartBlock = "█"
	chartTrack = "░"
	legendMark = "■"
)

// macroLabels are the legend labels, indexed like MacroPalette.
//
//nolint:gochecknoglobals // Fixed labels.
var macroLabels = [3]string{food.Label(food.Carbohydrates), food.Label(food.Protein), food.Label(food.Fat)}

// SegmentWidths splits width columns between the entries in proportion to
// their values. Negative values count as zero. When nothing is positive all
// widths are zero. The widths always sum to width otherwise.
func SegmentWidths(entries [3]food.MacronutrientEntry, width int) [3]int {
	var out [3]int
	if width <= 0 {
		return out
	}

	var weights [3]float64
	total := 0.0
	for i, e := range entries {
		if e.Value > 0 && !math.IsInf(e.Value, 0) {
			weights[i] = e.Value
			total += e.Value
		}
	}
	if total <= 0 {
		return out
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, 0, len(entries))
	used := 0
	for i, w := range weights {
		exact := w / total * float64(width)
		out[i] = int(math.Floor(exact))
		used += out[i]
		rems = append(rems, remainder{index: i, frac: exact - math.Floor(exact)})
	}

	// Largest remainder first; ties go to the earlier entry.
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for k := 0; used < width; k++ {
		out[rems[k%len(rems)].index]++
		used++
	}
	return out
}

// RenderMacroChart renders the entries as a single stacked bar. Colors are
// taken from MacroPalette by position, whatever the values are.
func RenderMacroChart(entries [3]food.MacronutrientEntry, width int) string {
	width = max(width, minChartWidth)
	widths := SegmentWidths(entries, width)

	if widths[0]+widths[1]+widths[2] == 0 {
		return SubtleStyle.Render(strings.Repeat(chartTrack, width))
	}

	var b strings.Builder
	for i, w := range widths {
		if w == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(MacroPalette[i]).Render(strings.Repeat(chartBlock, w)))
	}
	return b.String()
}

// RenderMacroLegend renders one colored marker per entry with its share of
// the positive total.
func RenderMacroLegend(entries [3]food.MacronutrientEntry) string {
	shares := food.Shares(entries)
	parts := make([]string, 0, len(entries))
	for i := range entries {
		mark := lipgloss.NewStyle().Foreground(MacroPalette[i]).Render(legendMark)
		parts = append(parts, fmt.Sprintf("%s %s %.1f%%", mark, macroLabels[i], shares[i]))
	}
	return strings.Join(parts, "   ")
}
