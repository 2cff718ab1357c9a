// Package food holds the nutrition data model and the pure derivations the
// views render from it: slugs, catalog summaries, macronutrient projections
// and page metadata.
package food

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Macronutrient names, in display order.
const (
	Carbohydrates = "carbohydrates"
	Protein       = "protein"
	Fat           = "fat"
)

// Record is a single food as served by the nutrition API. Macro values are
// grams per 100 g.
type Record struct {
	Name          string   `json:"name"`
	Carbohydrates float64  `json:"carbohydrates"`
	Protein       float64  `json:"protein"`
	Fat           float64  `json:"fat"`
	Vitamins      []string `json:"vitamins,omitempty"`
	Minerals      []string `json:"minerals,omitempty"`
}

// Summary is the selectable projection of a Record.
type Summary struct {
	Identifier   string `json:"identifier"`
	DisplayLabel string `json:"label"`
}

// MacronutrientEntry is one labeled value of the macro breakdown.
type MacronutrientEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// UnmarshalJSON decodes a record, reading macro values leniently: numbers and
// numeric strings keep their value, anything else becomes 0.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name          string        `json:"name"`
		Carbohydrates lenientNumber `json:"carbohydrates"`
		Protein       lenientNumber `json:"protein"`
		Fat           lenientNumber `json:"fat"`
		Vitamins      []string      `json:"vitamins"`
		Minerals      []string      `json:"minerals"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{
		Name:          raw.Name,
		Carbohydrates: float64(raw.Carbohydrates),
		Protein:       float64(raw.Protein),
		Fat:           float64(raw.Fat),
		Vitamins:      raw.Vitamins,
		Minerals:      raw.Minerals,
	}
	return nil
}

// lenientNumber decodes any JSON value, reading anything that is not a
// finite number (or a string holding one) as 0.
type lenientNumber float64

func (n *lenientNumber) UnmarshalJSON(data []byte) error {
	*n = 0

	// The enclosing document is already well formed, so an error here is an
	// out of range number.
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil //nolint:nilerr // out of range reads as 0
	}

	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = lenientNumber(f)
	return nil
}
