package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary value with two fractional digits.
// JSON input may be a number or a numeric string; anything unparseable
// decodes as 0.00 instead of failing the request. It marshals as an
// unquoted number with exactly two decimals.
type Money struct {
	decimal.Decimal
}

// New creates a Money rounded half-up to two decimals.
func New(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// FromFloat creates a Money from a float, rounded half-up to two decimals.
func FromFloat(f float64) Money {
	return New(decimal.NewFromFloat(f))
}

// Normalize converts an arbitrary numeric input into a two-decimal value,
// rounding half-up. Malformed input yields 0.00, never an error: the
// engine substitutes defaults rather than surfacing parse failures.
func Normalize(raw interface{}) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case Money:
		return v.Decimal.Round(2)
	case decimal.Decimal:
		return v.Round(2)
	case float64:
		return decimal.NewFromFloat(v).Round(2)
	case float32:
		return decimal.NewFromFloat32(v).Round(2)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return parse(v.String())
	case string:
		return parse(v)
	default:
		return decimal.Zero
	}
}

func parse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// UnmarshalJSON accepts numbers and numeric strings; garbage becomes 0.00.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	m.Decimal = parse(s)
	return nil
}

// MarshalJSON emits an unquoted number with two decimals, e.g. 1234.50.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(2).StringFixed(2)), nil
}
