package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// RentalDays is a rental period offered on the product page.
// It only drives quotes; cart lines carry the per-day rate.
type RentalDays int

var rentalDurations = []RentalDays{1, 3, 7, 14, 30}

func RentalDurations() []RentalDays {
	return slices.Clone(rentalDurations)
}

func ParseRentalDays(days int) (RentalDays, error) {
	d := RentalDays(days)
	if !slices.Contains(rentalDurations, d) {
		return 0, fmt.Errorf("rental duration[%d] is not offered", days)
	}
	return d, nil
}

type RentalQuoteResult struct {
	Days     RentalDays
	BuyPrice Money
	DailyFee Money
	Total    Money
}

func RentalQuote(p Product, days RentalDays) RentalQuoteResult {
	return RentalQuoteResult{
		Days:     days,
		BuyPrice: NewMoney(p.Price),
		DailyFee: NewMoney(p.RentPrice),
		Total:    NewMoney(p.RentPrice.Mul(decimal.NewFromInt(int64(days)))),
	}
}
