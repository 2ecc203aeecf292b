package pricing

import (
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount in the tenant's currency. It is encoded
// as a bare JSON number so persisted configs keep the `"weekday": 150` shape.
type Money struct {
	amount decimal.Decimal
}

var ZeroMoney = Money{}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d}
}

func MoneyFromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidMoney
	}
	return Money{amount: d}, nil
}

func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Mul(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

// RoundMinor rounds half-away-from-zero to the currency's two minor digits.
func (m Money) RoundMinor() Money {
	return Money{amount: m.amount.Round(2)}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidMoney
	}
	m.amount = d
	return nil
}
