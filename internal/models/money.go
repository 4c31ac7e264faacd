package models

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed for amounts the aggregator sends without one.
const DefaultCurrency = "NZD"

var hundred = decimal.NewFromInt(100)

// Money is a decimal amount in major units (dollars) with its currency.
// Ledger amounts keep their sign: negative is money leaving the account.
type Money struct {
	Value    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"value"`
	Currency string          `gorm:"size:3;not null" json:"currency"`
}

// NewMoney builds a Money, defaulting the currency when blank.
func NewMoney(value decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Value: value, Currency: currency}
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() decimal.Decimal {
	return m.Value.Abs()
}

// IsNegative reports whether the amount is an outflow.
func (m Money) IsNegative() bool {
	return m.Value.IsNegative()
}

// ToCents converts a dollar amount to integer cents, rounding half away from zero.
func ToCents(dollars decimal.Decimal) int64 {
	return dollars.Mul(hundred).Round(0).IntPart()
}

// FromCents converts integer cents to a dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
