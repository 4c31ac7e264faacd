package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountOperator is the comparison an AmountCondition applies.
type AmountOperator string

const (
	AmountOperatorGTE AmountOperator = "gte"
	AmountOperatorLTE AmountOperator = "lte"
	AmountOperatorEQ  AmountOperator = "eq"
	AmountOperatorGT  AmountOperator = "gt"
	AmountOperatorLT  AmountOperator = "lt"
)

// Valid reports whether op is one of the supported operators.
func (op AmountOperator) Valid() bool {
	switch op {
	case AmountOperatorGTE, AmountOperatorLTE, AmountOperatorEQ, AmountOperatorGT, AmountOperatorLT:
		return true
	}
	return false
}

var (
	ErrUnknownAmountOperator = errors.New("unknown amount operator")
	ErrNegativeAmountValue   = errors.New("amount value must not be negative")
)

// AmountCondition narrows a reference rule to transactions whose absolute
// amount compares to Value using Operator.
type AmountCondition struct {
	Operator AmountOperator  `json:"operator"`
	Value    decimal.Decimal `json:"value"`
}

// Matches reports whether amount satisfies the condition. The sign of amount
// is ignored. A nil condition matches everything and an unknown operator
// matches nothing.
func (c *AmountCondition) Matches(amount decimal.Decimal) bool {
	if c == nil {
		return true
	}

	abs := amount.Abs()
	switch c.Operator {
	case AmountOperatorGTE:
		return abs.GreaterThanOrEqual(c.Value)
	case AmountOperatorLTE:
		return abs.LessThanOrEqual(c.Value)
	case AmountOperatorEQ:
		return abs.Equal(c.Value)
	case AmountOperatorGT:
		return abs.GreaterThan(c.Value)
	case AmountOperatorLT:
		return abs.LessThan(c.Value)
	default:
		return false
	}
}

// Validate checks the operator and value bounds.
func (c AmountCondition) Validate() error {
	if !c.Operator.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAmountOperator, c.Operator)
	}
	if c.Value.IsNegative() {
		return ErrNegativeAmountValue
	}
	return nil
}
