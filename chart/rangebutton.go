package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeButton represents a range selector preset.
type RangeButton struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
	Text  string `json:"text"`
}

// rangeUnits maps preset unit suffixes to range selector button types.
var rangeUnits = map[byte]string{
	'h': "hour",
	'd': "day",
	'w': "week",
	'm': "month",
	'y': "year",
}

// ParseRangeButton parses a range selector preset such as 1m, 6m, 2w, ytd or all.
func ParseRangeButton(preset string) (RangeButton, error) {
	text := strings.ToLower(strings.TrimSpace(preset))
	switch text {
	case "":
		return RangeButton{}, fmt.Errorf("range preset cannot be an empty string")
	case "ytd":
		return RangeButton{Type: "ytd", Text: "YTD"}, nil
	case "all":
		return RangeButton{Type: "all", Text: "All"}, nil
	}

	unit, ok := rangeUnits[text[len(text)-1]]
	if !ok {
		return RangeButton{}, fmt.Errorf("unknown unit in range preset '%s'", preset)
	}

	count, err := strconv.Atoi(text[:len(text)-1])
	if err != nil || count <= 0 {
		return RangeButton{}, fmt.Errorf("invalid count in range preset '%s'", preset)
	}

	return RangeButton{Type: unit, Count: count, Text: text}, nil
}

// ParseRangeButtons parses the provided range selector presets in order.
func ParseRangeButtons(presets []string) ([]RangeButton, error) {
	buttons := make([]RangeButton, 0, len(presets))
	for _, preset := range presets {
		button, err := ParseRangeButton(preset)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, button)
	}

	return buttons, nil
}
