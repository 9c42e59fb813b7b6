package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/rentwear/storefront/internal/domain"
)

// Form is the shipping and payment form submitted at checkout.
type Form struct {
	FullName      string `schema:"fullName" json:"fullName"`
	Phone         string `schema:"phone" json:"phone"`
	Email         string `schema:"email" json:"email"`
	Address       string `schema:"address" json:"address"`
	City          string `schema:"city" json:"city"`
	State         string `schema:"state" json:"state"`
	Pincode       string `schema:"pincode" json:"pincode"`
	PaymentMethod string `schema:"paymentMethod" json:"paymentMethod"`
}

// ValidationError reports the first form field that blocks submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func DecodeForm(values url.Values) (Form, error) {
	var form Form

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(&form, values); err != nil {
		return Form{}, fmt.Errorf("decoder.Decode: %w", err)
	}

	return form, nil
}

// Validate checks fields in the order they appear on the form.
func (f Form) Validate() error {
	required := []struct {
		field   string
		value   string
		message string
	}{
		{"fullName", f.FullName, "Please enter your full name"},
		{"phone", f.Phone, "Please enter your phone number"},
		{"email", f.Email, "Please enter your email address"},
		{"address", f.Address, "Please enter your address"},
		{"city", f.City, "Please enter your city"},
		{"state", f.State, "Please select your state"},
		{"pincode", f.Pincode, "Please enter your PIN code"},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: r.message}
		}
		if r.field == "state" && !domain.IsShippingState(r.value) {
			return &ValidationError{Field: r.field, Message: "Please select your state"}
		}
	}

	if !f.paymentMethod().Valid() {
		return &ValidationError{Field: "paymentMethod", Message: "Please select a payment method"}
	}

	return nil
}

func (f Form) paymentMethod() domain.PaymentMethod {
	if f.PaymentMethod == "" {
		return domain.PaymentCashOnDelivery
	}
	return domain.PaymentMethod(f.PaymentMethod)
}

func (f Form) shipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName: strings.TrimSpace(f.FullName),
		Phone:    strings.TrimSpace(f.Phone),
		Email:    strings.TrimSpace(f.Email),
		Address:  strings.TrimSpace(f.Address),
		City:     strings.TrimSpace(f.City),
		State:    f.State,
		Pincode:  strings.TrimSpace(f.Pincode),
	}
}

type ReturnRequest struct {
	Reason        string `schema:"reason" json:"reason"`
	PickupAddress string `schema:"pickupAddress" json:"pickupAddress"`
}

type ExchangeRequest struct {
	Size string `schema:"size" json:"size"`
}

const missingInformation = "Please fill in all the required fields."

func (r ReturnRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return &ValidationError{Field: "reason", Message: missingInformation}
	}
	if strings.TrimSpace(r.PickupAddress) == "" {
		return &ValidationError{Field: "pickupAddress", Message: missingInformation}
	}
	return nil
}

func (r ExchangeRequest) Validate() error {
	if strings.TrimSpace(r.Size) == "" {
		return &ValidationError{Field: "size", Message: "Please select the new size."}
	}
	return nil
}
