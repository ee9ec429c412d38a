package series

import (
	"fmt"
	"strconv"

	"github.com/dnldd/candleplugin/shared"
)

// Series represents a candlestick series ready for charting.
type Series struct {
	// Points are the series points in row order.
	Points []shared.Point
	// Symbol is the series label.
	Symbol string
}

// Build reshapes a normalized store into a candlestick series. The symbol label is taken
// from the first row of the symbol column.
func Build(cfg shared.FieldConfig, store shared.Store) (*Series, error) {
	n, err := rowCount(cfg, store)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", shared.ErrMissingSymbol)
	}

	symbol := store.Column(cfg.Column(shared.Symbol))[0]
	if symbol == nil {
		return nil, fmt.Errorf("%w: first symbol value is empty", shared.ErrMissingSymbol)
	}

	var label string
	switch s := symbol.(type) {
	case string:
		label = s
	case float64:
		label = strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		label = strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		label = fmt.Sprint(s)
	}

	dates := store.Column(cfg.Column(shared.Date))
	opens := store.Column(cfg.Column(shared.Open))
	highs := store.Column(cfg.Column(shared.High))
	lows := store.Column(cfg.Column(shared.Low))
	closes := store.Column(cfg.Column(shared.Close))

	points := make([]shared.Point, n)
	for idx := range points {
		points[idx] = shared.NewPoint(dates[idx], opens[idx], highs[idx], lows[idx], closes[idx])
	}

	return &Series{
		Points: points,
		Symbol: label,
	}, nil
}
