package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// BaseCurrency is the unit every stored price is expressed in.
var BaseCurrency = currency.USD

// DisplayCurrency is what shoppers see.
var DisplayCurrency = currency.INR

// DisplayRate converts BaseCurrency amounts to DisplayCurrency.
var DisplayRate = decimal.NewFromInt(80)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: BaseCurrency}
}

// ToDisplay converts a base amount to the display currency, rounded to whole units.
// Amounts already in the display currency are only rounded.
func (m Money) ToDisplay() Money {
	if m.Currency == DisplayCurrency {
		return Money{Amount: m.Amount.Round(0), Currency: DisplayCurrency}
	}
	return Money{
		Amount:   m.Amount.Mul(DisplayRate).Round(0),
		Currency: DisplayCurrency,
	}
}

// String renders the narrow currency symbol followed by the amount,
// e.g. "$29.90" or "₹2392".
func (m Money) String() string {
	places := int32(2)
	if m.Currency == DisplayCurrency {
		places = 0
	}
	return fmt.Sprintf("%v%s", currency.NarrowSymbol(m.Currency), m.Amount.StringFixed(places))
}
