// Package coerce turns arbitrary user-entered values into finite numbers.
// Nothing here returns an error: a value that cannot be read as a number
// yields the caller's fallback.
package coerce

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// plainNumber is the only shape accepted once a string has been stripped
// down to digits, '.' and '-'. "1.2.3" and "7-2" do not match.
var plainNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// Number returns v as a finite float64, or fallback when v is absent,
// non-numeric, NaN or infinite.
func Number(v any, fallback float64) float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return fallback
	case bool:
		return fallback
	case string:
		var ok bool
		if f, ok = parseString(t); !ok {
			return fallback
		}
	case []byte:
		var ok bool
		if f, ok = parseString(string(t)); !ok {
			return fallback
		}
	default:
		var err error
		if f, err = cast.ToFloat64E(v); err != nil {
			return fallback
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// NonNegative is Number floored at zero.
func NonNegative(v any, fallback float64) float64 {
	return math.Max(0, Number(v, fallback))
}

// Count is NonNegative truncated to a whole number.
func Count(v any, fallback float64) float64 {
	return math.Trunc(NonNegative(v, fallback))
}

// Clamp is Number bounded to [lo, hi].
func Clamp(v any, fallback, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, Number(v, fallback)))
}

func parseString(s string) (float64, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	if !plainNumber.MatchString(stripped) {
		return 0, false
	}
	f, err := cast.ToFloat64E(stripped)
	if err != nil {
		return 0, false
	}
	return f, true
}
