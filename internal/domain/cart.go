package domain

import (
	"github.com/shopspring/decimal"
)

// LineKey identifies a cart line. Two lines with equal keys never coexist.
type LineKey struct {
	ProductID string
	IsRental  bool
	Size      string
	Color     string
}

type CartLine struct {
	Product  Product
	Quantity int
	IsRental bool
	Size     string
	Color    string
}

func (l CartLine) Key() LineKey {
	return LineKey{
		ProductID: l.Product.ID,
		IsRental:  l.IsRental,
		Size:      l.Size,
		Color:     l.Color,
	}
}

func (l CartLine) UnitPrice() decimal.Decimal {
	return l.Product.UnitPrice(l.IsRental)
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}
