package series

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dnldd/candleplugin/shared"
)

// dateLayouts are the string date layouts recognized when ordering rows.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateKey returns the numeric ordering key of the provided date value. Strings holding
// dates resolve to unix milliseconds, matching the epoch millisecond dates the host sends.
func dateKey(v shared.Value) (float64, bool) {
	var key float64
	switch d := v.(type) {
	case float64:
		key = d
	case float32:
		key = float64(d)
	case int:
		key = float64(d)
	case int8:
		key = float64(d)
	case int16:
		key = float64(d)
	case int32:
		key = float64(d)
	case int64:
		key = float64(d)
	case uint:
		key = float64(d)
	case uint8:
		key = float64(d)
	case uint16:
		key = float64(d)
	case uint32:
		key = float64(d)
	case uint64:
		key = float64(d)
	case time.Time:
		key = float64(d.UnixMilli())
	case string:
		return parseDateString(d)
	default:
		return 0, false
	}

	if math.IsNaN(key) {
		return 0, false
	}

	return key, true
}

// parseDateString resolves a numeric or formatted date string to its ordering key.
func parseDateString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err == nil {
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return float64(t.UnixMilli()), true
		}
	}

	return 0, false
}

// compareDates orders two rows by date ascending. Rows without a usable date order after
// all dated rows.
func compareDates(a, b row) int {
	switch {
	case a.dated && b.dated:
		switch {
		case a.date < b.date:
			return -1
		case a.date > b.date:
			return 1
		default:
			return 0
		}
	case a.dated:
		return -1
	case b.dated:
		return 1
	default:
		return 0
	}
}
