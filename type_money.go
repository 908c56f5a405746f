package portal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Symbol is the canonical currency prefix of every persisted amount.
const Symbol = "P"

// currencyCode is the ISO code behind Symbol, it provides the fraction and separators.
const currencyCode = money.PHP

// stripper removes every currency symbol the portal has ever written, plus
// whitespace and thousands separators. "PHP" must be listed before "P".
var stripper = strings.NewReplacer("PHP", "", "₱", "", Symbol, "", "¥", "", " ", "", ",", "")

// errEmptyAmount is returned when nothing numeric is left after stripping symbols.
var errEmptyAmount = errors.New("empty amount")

// errAmountRange is returned for amounts whose centavos do not fit an int64.
var errAmountRange = errors.New("amount out of range")

// Money is an amount of pesos.
//
// The value is exact (a decimal in major units), and Cents exposes it as
// integer centavos. The display string is only produced by String.
type Money struct {
	value decimal.Decimal // as major unit value
}

// Pesos returns the Money for a value in major units.
func Pesos[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// Centavos returns the Money for a value in minor units.
func Centavos(c int64) Money { return Money{value: decimal.New(c, -2)} }

// ParseMoney parses an amount as found in a ledger: an optional currency
// symbol, digits with optional thousands separators, and an optional
// fractional part. "P5,000.00", "5000", "₱ 5,000.5" and "¥5000" are all valid.
func ParseMoney(s string) (Money, error) {
	txt := stripper.Replace(strings.TrimSpace(s))
	if txt == "" {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, errEmptyAmount)
	}
	v, err := decimal.NewFromString(txt)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m := Money{value: v}
	if !m.InRange() {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, errAmountRange)
	}
	return m, nil
}

// currency returns the money's currency.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, currencyCode).Currency()
}

// String returns the canonical representation, e.g. "P5,000.00". The sign
// of a negative amount follows the symbol: "P-5,000.00".
func (m Money) String() string {
	cur := currency()
	f := money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, Symbol, "$1")
	c := m.Cents()
	if c < 0 {
		return Symbol + "-" + strings.TrimPrefix(f.Format(-c), Symbol)
	}
	return f.Format(c)
}

// centavos returns the amount in minor units, rounded half away from zero.
func (m Money) centavos() decimal.Decimal {
	fraction := int32(currency().Fraction)
	return m.value.Round(fraction).Shift(fraction)
}

// InRange reports whether the amount in centavos, and its opposite, fit an
// int64. Only such amounts have a canonical representation.
func (m Money) InRange() bool {
	c := m.centavos().BigInt()
	return c.IsInt64() && c.Int64() != math.MinInt64
}

// Cents returns the amount in centavos, rounded half away from zero. m must
// be InRange.
func (m Money) Cents() int64 { return m.centavos().IntPart() }

func (m Money) Decimal() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n int64) Money         { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }
