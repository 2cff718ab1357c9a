package food

// Project derives the macronutrient breakdown of r in the fixed order
// carbohydrates, protein, fat. Values are copied as-is.
func Project(r Record) [3]MacronutrientEntry {
	return [3]MacronutrientEntry{
		{Name: Carbohydrates, Value: r.Carbohydrates},
		{Name: Protein, Value: r.Protein},
		{Name: Fat, Value: r.Fat},
	}
}

// Shares returns each entry's percentage of the positive total. Negative
// values count as zero; an all-zero breakdown yields all zeros.
func Shares(entries [3]MacronutrientEntry) [3]float64 {
	total := 0.0
	for _, e := range entries {
		if e.Value > 0 {
			total += e.Value
		}
	}

	var out [3]float64
	if total == 0 {
		return out
	}
	for i, e := range entries {
		if e.Value > 0 {
			out[i] = e.Value / total * 100 //nolint:mnd // Percentage calculation.
		}
	}
	return out
}

// Label returns the display label of a macronutrient name.
func Label(name string) string {
	switch name {
	case Carbohydrates:
		return "Carbohydrates"
	case Protein:
		return "Protein"
	case Fat:
		return "Fat"
	default:
		return name
	}
}
