// Package settlement turns orders, group-level shared costs and item weights into the amounts
// each member owes. Every function is pure: inputs are never mutated and nothing is cached
// between calls, so callers can recompute on every read of a changing snapshot.
//
// Numeric anomalies (NaN, Inf, absent or non-numeric values) and empty denominators resolve to 0.
// Nothing in this package returns an error or panics.
package settlement

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SafeNumber coerces a loosely typed value into a finite float64.
// Unparseable, non-finite or missing values become 0.
func SafeNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
func RoundHalfUp(x float64) float64 {
	x = SafeNumber(x)
	return math.Floor(x + 0.5)
}

// ToDestinationCeil converts a JPY amount with ceiling rounding.
// Used for figures shown to the payer so they are never under-charged.
func ToDestinationCeil(amountJPY, rate float64) float64 {
	return math.Ceil(SafeNumber(amountJPY) * SafeNumber(rate))
}

// ToDestinationRound converts a JPY amount rounding half up.
// Used for aggregate and report figures.
func ToDestinationRound(amountJPY, rate float64) float64 {
	return RoundHalfUp(SafeNumber(amountJPY) * SafeNumber(rate))
}

func divideOrZero(numerator float64, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return SafeNumber(numerator) / float64(denominator)
}
