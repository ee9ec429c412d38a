package shared

import "errors"

var (
	// ErrNotReady is returned when none of the configured columns have arrived yet.
	ErrNotReady = errors.New("data not ready")
	// ErrDataShapeMismatch is returned when the configured columns disagree on length.
	ErrDataShapeMismatch = errors.New("data shape mismatch")
	// ErrMissingSymbol is returned when no symbol label can be taken from the data.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrInvalidPayload is returned when a host payload cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrInvalidSettings is returned when the widget settings are not sane.
	ErrInvalidSettings = errors.New("invalid settings")
)
