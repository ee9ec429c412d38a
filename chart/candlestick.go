package chart

import (
	"github.com/dnldd/candleplugin/series"
	"github.com/dnldd/candleplugin/shared"
)

const (
	// CandlestickType is the chart and series type of candlestick charts.
	CandlestickType = "candlestick"
	// stepCenter centers series points on their date.
	stepCenter = "center"
	// NoSelection marks no range selector button as selected.
	NoSelection = -1
)

// Settings represents the cosmetic chart options. None of them affect the series data.
type Settings struct {
	// Animation toggles chart animation.
	Animation bool
	// Navigator toggles the navigator pane.
	Navigator bool
	// Scrollbar toggles the scrollbar.
	Scrollbar bool
	// RangeButtons are the range selector presets, the renderer defaults apply when empty.
	RangeButtons []RangeButton
	// RangeSelected is the index of the initially selected range button, or NoSelection.
	RangeSelected int
}

// Toggle represents an option that can be switched on or off.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// Chart represents the chart level options.
type Chart struct {
	Type      string `json:"type"`
	Animation bool   `json:"animation"`
}

// RangeSelector represents the range selector options.
type RangeSelector struct {
	Selected *int          `json:"selected,omitempty"`
	Buttons  []RangeButton `json:"buttons,omitempty"`
}

// Series represents a chart series.
type Series struct {
	Type string         `json:"type"`
	Name string         `json:"name"`
	Step string         `json:"step,omitempty"`
	Data []shared.Point `json:"data"`
}

// Options represents the chart configuration handed to the candlestick renderer.
type Options struct {
	Chart         Chart          `json:"chart"`
	RangeSelector *RangeSelector `json:"rangeSelector,omitempty"`
	Navigator     Toggle         `json:"navigator"`
	Scrollbar     Toggle         `json:"scrollbar"`
	Series        []Series       `json:"series"`
}

// NewOptions wraps the provided series in candlestick chart options.
func NewOptions(settings Settings, s *series.Series) *Options {
	opts := &Options{
		Chart: Chart{
			Type:      CandlestickType,
			Animation: settings.Animation,
		},
		Navigator: Toggle{Enabled: settings.Navigator},
		Scrollbar: Toggle{Enabled: settings.Scrollbar},
		Series: []Series{{
			Type: CandlestickType,
			Name: s.Symbol,
			Step: stepCenter,
			Data: s.Points,
		}},
	}

	if len(settings.RangeButtons) > 0 || settings.RangeSelected > NoSelection {
		selector := &RangeSelector{Buttons: settings.RangeButtons}
		if settings.RangeSelected > NoSelection {
			selected := settings.RangeSelected
			selector.Selected = &selected
		}
		opts.RangeSelector = selector
	}

	return opts
}
