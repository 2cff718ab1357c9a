package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nutrispark/internal/food"
)

// RenderFoodDetail renders the breakdown of record: name, chart, legend,
// per-100g figures and the vitamin and mineral lists.
func RenderFoodDetail(record food.Record, macros [3]food.MacronutrientEntry, width int) string {
	width = max(width, minChartWidth+borderPadding*2)
	chartWidth := width - borderPadding*2

	var content strings.Builder
	content.WriteString(TitleStyle.Render(record.Name))
	content.WriteString("\n\n")
	content.WriteString(RenderMacroChart(macros, chartWidth))
	content.WriteString("\n")
	content.WriteString(RenderMacroLegend(macros))
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render("Nutritional Information per 100 grams:"))
	content.WriteString("\n")
	fields := [3]float64{record.Carbohydrates, record.Protein, record.Fat}
	for i, v := range fields {
		mark := lipgloss.NewStyle().Foreground(MacroPalette[i]).Render(legendMark)
		content.WriteString(mark + " ")
		content.WriteString(LabelStyle.Render(macroLabels[i] + ": "))
		content.WriteString(ValueStyle.Render(food.FormatGrams(v)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Vitamins: "))
	content.WriteString(food.JoinList(record.Vitamins))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Minerals: "))
	content.WriteString(food.JoinList(record.Minerals))

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}
