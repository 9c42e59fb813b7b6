package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// ShippingStates lists the state codes accepted at checkout.
var ShippingStates = []string{
	"delhi",
	"maharashtra",
	"karnataka",
	"tamilnadu",
	"telangana",
	"gujarat",
}

func IsShippingState(code string) bool {
	return slices.Contains(ShippingStates, code)
}

type ShippingDetails struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type OrderStatus string

const (
	OrderConfirmed OrderStatus = "Confirmed"
)

type Order struct {
	ID            uuid.UUID
	Lines         []CartLine
	Total         Money
	Shipping      ShippingDetails
	PaymentMethod PaymentMethod
	Status        OrderStatus

	PlacedAt time.Time
}

func (o Order) ItemCount() int {
	var n int
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
