package shared

// Value is a raw cell value supplied by the host.
type Value = any

// Column is an ordered sequence of raw values.
type Column []Value

// Store maps host column identifiers to their columns.
type Store map[string]Column

// Column returns the column with the provided identifier. An empty identifier or an absent
// column returns nil.
func (s Store) Column(id string) Column {
	if id == "" {
		return nil
	}

	return s[id]
}

// Clone returns a copy of the store. Columns are copied, values are not.
func (s Store) Clone() Store {
	if s == nil {
		return nil
	}

	clone := make(Store, len(s))
	for id, col := range s {
		if col == nil {
			clone[id] = nil
			continue
		}
		dup := make(Column, len(col))
		copy(dup, col)
		clone[id] = dup
	}

	return clone
}

// Point is a candlestick series point ordered as date, open, high, low and close.
type Point [5]Value

// NewPoint initializes a new series point.
func NewPoint(date, open, high, low, cls Value) Point {
	return Point{date, open, high, low, cls}
}
