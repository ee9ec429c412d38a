package series

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dnldd/candleplugin/shared"
)

// row is the sort unit of a normalization pass.
type row struct {
	index int
	date  float64
	dated bool
}

// rowCount returns the shared length of the configured columns.
func rowCount(cfg shared.FieldConfig, store shared.Store) (int, error) {
	n := len(store.Column(cfg.Column(shared.Open)))
	mismatch := false
	for _, f := range shared.Fields {
		if len(store.Column(cfg.Column(f))) != n {
			mismatch = true
			break
		}
	}

	if !mismatch {
		return n, nil
	}

	lengths := make([]string, 0, len(shared.Fields))
	for _, f := range shared.Fields {
		lengths = append(lengths, fmt.Sprintf("%s=%d", f, len(store.Column(cfg.Column(f)))))
	}

	return 0, fmt.Errorf("%w: column lengths %s", shared.ErrDataShapeMismatch,
		strings.Join(lengths, ", "))
}

// Normalize returns a copy of the store with the configured columns reordered by ascending
// date. All configured columns are reordered by the same permutation so every index still
// describes one row. Rows with equal dates keep their original relative order. Columns the
// configuration does not reference are copied unchanged.
//
// Numbers and numeric strings order by their raw value, while layout formatted date strings
// and time values order by unix milliseconds, so a column mixing the two forms is ordered on
// both scales at once. Unlike numeric subtraction, nil and bool dates are not coerced to 0
// or 1: rows without a usable date order after every dated row.
func Normalize(cfg shared.FieldConfig, store shared.Store) (shared.Store, error) {
	n, err := rowCount(cfg, store)
	if err != nil {
		return nil, err
	}

	dates := store.Column(cfg.Column(shared.Date))
	rows := make([]row, n)
	for idx := range rows {
		key, ok := dateKey(dates[idx])
		rows[idx] = row{index: idx, date: key, dated: ok}
	}

	slices.SortStableFunc(rows, compareDates)

	out := store.Clone()
	if out == nil {
		out = make(shared.Store)
	}

	permuted := make(map[string]bool, len(shared.Fields))
	for _, f := range shared.Fields {
		id := cfg.Column(f)
		if id == "" || permuted[id] {
			continue
		}
		permuted[id] = true

		src, ok := store[id]
		if !ok {
			continue
		}

		dst := make(shared.Column, n)
		for idx := range rows {
			dst[idx] = src[rows[idx].index]
		}
		out[id] = dst
	}

	return out, nil
}
