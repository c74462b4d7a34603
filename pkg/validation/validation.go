package validation

import (
	"strconv"
	"strings"
)

const (
	// MaxTimezoneOffset is the widest UTC offset in use (UTC+14), in seconds.
	MaxTimezoneOffset = 14 * 60 * 60
	// MinTimezoneOffset is the narrowest UTC offset in use (UTC-12), in seconds.
	MinTimezoneOffset = -12 * 60 * 60
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidLatitude reports whether lat is within [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is within [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// ParseCoordinate parses a query-string coordinate. Empty input is reported as not ok.
func ParseCoordinate(raw string) (float64, bool) {
	trimmed, ok := TrimAndValidate(raw)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// IsValidTimezoneOffset reports whether offset (seconds from UTC) is a real-world offset
func IsValidTimezoneOffset(offset int) bool {
	return offset >= MinTimezoneOffset && offset <= MaxTimezoneOffset
}
