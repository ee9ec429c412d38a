package shared

import (
	"errors"
	"fmt"
)

// Field represents a logical candlestick field bound to a host column.
type Field int

const (
	Open Field = iota
	High
	Low
	Close
	Date
	Volume
	Symbol
)

// Fields lists all logical fields in their canonical order.
var Fields = []Field{Open, High, Low, Close, Date, Volume, Symbol}

// String stringifies the provided field.
func (f Field) String() string {
	switch f {
	case Open:
		return "open"
	case High:
		return "high"
	case Low:
		return "low"
	case Close:
		return "close"
	case Date:
		return "date"
	case Volume:
		return "volume"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ParseField returns the field with the provided name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown field '%s'", name)
}

// FieldConfig maps the logical candlestick fields to host column identifiers.
type FieldConfig struct {
	// Source is the host data element the columns belong to.
	Source string
	// Open is the column identifier of the open prices.
	Open string
	// High is the column identifier of the high prices.
	High string
	// Low is the column identifier of the low prices.
	Low string
	// Close is the column identifier of the close prices.
	Close string
	// Date is the column identifier of the dates.
	Date string
	// Volume is the column identifier of the volumes.
	Volume string
	// Symbol is the column identifier of the symbol labels.
	Symbol string
}

// Column returns the column identifier bound to the provided field. An unbound field
// returns an empty string.
func (cfg *FieldConfig) Column(f Field) string {
	switch f {
	case Open:
		return cfg.Open
	case High:
		return cfg.High
	case Low:
		return cfg.Low
	case Close:
		return cfg.Close
	case Date:
		return cfg.Date
	case Volume:
		return cfg.Volume
	case Symbol:
		return cfg.Symbol
	default:
		return ""
	}
}

// Bind sets the column identifier of the provided field.
func (cfg *FieldConfig) Bind(f Field, column string) {
	switch f {
	case Open:
		cfg.Open = column
	case High:
		cfg.High = column
	case Low:
		cfg.Low = column
	case Close:
		cfg.Close = column
	case Date:
		cfg.Date = column
	case Volume:
		cfg.Volume = column
	case Symbol:
		cfg.Symbol = column
	}
}

// Validate asserts every field is bound to a column.
func (cfg *FieldConfig) Validate() error {
	var errs error

	if cfg.Source == "" {
		errs = errors.Join(errs, fmt.Errorf("source element cannot be an empty string"))
	}
	for _, f := range Fields {
		if cfg.Column(f) == "" {
			errs = errors.Join(errs, fmt.Errorf("no column bound to the %s field", f))
		}
	}

	return errs
}
