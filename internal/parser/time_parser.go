package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for begin/end besides unix milliseconds
const (
	dateTimeLayout = "02/01/2006 15:04"
	dateLayout     = "02/01/2006"
)

// Stored dates are ISO-8601 strings, which only cover these years
const (
	minYear = 0
	maxYear = 9999
)

// ParseTimestamp parses a begin/end argument into unix milliseconds
// Supported formats:
// - unix milliseconds (e.g., "1700000000000")
// - RFC3339 (e.g., "2024-12-15T09:30:00Z")
// - dd/mm/yyyy HH:MM in local time (e.g., "15/12/2024 09:30")
// - dd/mm/yyyy, meaning local midnight
func ParseTimestamp(input string) (int64, error) {
	millis, err := parseMillis(input)
	if err != nil {
		return 0, err
	}
	if year := time.UnixMilli(millis).Year(); year < minYear || year > maxYear {
		return 0, fmt.Errorf("timestamp %q is outside years %04d-%04d", input, minYear, maxYear)
	}
	return millis, nil
}

func parseMillis(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	if millis, err := strconv.ParseInt(input, 10, 64); err == nil {
		return millis, nil
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UnixMilli(), nil
	}

	if t, err := time.ParseInLocation(dateTimeLayout, input, time.Local); err == nil {
		return t.UnixMilli(), nil
	}

	if t, err := time.ParseInLocation(dateLayout, input, time.Local); err == nil {
		return t.UnixMilli(), nil
	}

	return 0, fmt.Errorf("invalid timestamp %q. Use: unix millis, RFC3339, dd/mm/yyyy HH:MM or dd/mm/yyyy", input)
}
