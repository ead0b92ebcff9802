package core

import (
	"strconv"
	"strings"
)

// ValuesEqual reports whether an actual configuration value matches the
// expected golden value. Rules apply in order, first match wins:
//
//  1. Expected values of auto/true/false (any case) compare as
//     case-insensitive strings, so a boolean expectation never falls
//     through to numeric comparison even when actual looks numeric.
//  2. Numeric comparison: float when either side contains a decimal
//     point, integer otherwise. "30" and "30.0" compare equal here.
//  3. Trimmed exact string equality.
func ValuesEqual(actual, expected string) bool {
	switch strings.ToLower(expected) {
	case "auto", "true", "false":
		return strings.EqualFold(actual, expected)
	}

	if strings.Contains(actual, ".") || strings.Contains(expected, ".") {
		af, errA := strconv.ParseFloat(strings.TrimSpace(actual), 64)
		ef, errE := strconv.ParseFloat(strings.TrimSpace(expected), 64)
		if errA == nil && errE == nil {
			return af == ef
		}
	} else {
		ai, errA := strconv.ParseInt(strings.TrimSpace(actual), 10, 64)
		ei, errE := strconv.ParseInt(strings.TrimSpace(expected), 10, 64)
		if errA == nil && errE == nil {
			return ai == ei
		}
	}

	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}
