package checkout_test

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rentwear/storefront/internal/cart"
	"github.com/rentwear/storefront/internal/checkout"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/rentwear/storefront/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *checkout.Form)
		wantField string
		wantError string
	}{
		{
			name:   "valid form: ok",
			mutate: func(*checkout.Form) {},
		},
		{
			name:   "default payment method: ok",
			mutate: func(f *checkout.Form) { f.PaymentMethod = "" },
		},
		{
			name:      "missing full name: error",
			mutate:    func(f *checkout.Form) { f.FullName = "  " },
			wantField: "fullName",
			wantError: "Please enter your full name",
		},
		{
			name:      "missing phone: error",
			mutate:    func(f *checkout.Form) { f.Phone = "" },
			wantField: "phone",
			wantError: "Please enter your phone number",
		},
		{
			name:      "missing email: error",
			mutate:    func(f *checkout.Form) { f.Email = "" },
			wantField: "email",
			wantError: "Please enter your email address",
		},
		{
			name:      "missing address: error",
			mutate:    func(f *checkout.Form) { f.Address = "\t" },
			wantField: "address",
			wantError: "Please enter your address",
		},
		{
			name:      "missing city: error",
			mutate:    func(f *checkout.Form) { f.City = "" },
			wantField: "city",
			wantError: "Please enter your city",
		},
		{
			name:      "missing state: error",
			mutate:    func(f *checkout.Form) { f.State = "" },
			wantField: "state",
			wantError: "Please select your state",
		},
		{
			name:      "unknown state: error",
			mutate:    func(f *checkout.Form) { f.State = "kerala" },
			wantField: "state",
			wantError: "Please select your state",
		},
		{
			name:      "missing pincode: error",
			mutate:    func(f *checkout.Form) { f.Pincode = "" },
			wantField: "pincode",
			wantError: "Please enter your PIN code",
		},
		{
			name:      "unknown payment method: error",
			mutate:    func(f *checkout.Form) { f.PaymentMethod = "cheque" },
			wantField: "paymentMethod",
			wantError: "Please select a payment method",
		},
		{
			name: "first missing field wins: error",
			mutate: func(f *checkout.Form) {
				f.City = ""
				f.Phone = ""
			},
			wantField: "phone",
			wantError: "Please enter your phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := randomForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.wantError == "" {
				require.NoError(t, err)
				return
			}

			var verr *checkout.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.EqualError(t, err, tt.wantError)
		})
	}
}

func TestDecodeForm(t *testing.T) {
	values := url.Values{
		"fullName":      {"Asha Rao"},
		"phone":         {"9999999999"},
		"email":         {"asha@example.com"},
		"address":       {"12 MG Road"},
		"city":          {"Bengaluru"},
		"state":         {"karnataka"},
		"pincode":       {"560001"},
		"paymentMethod": {"upi"},
		"unknown":       {"ignored"},
	}

	form, err := checkout.DecodeForm(values)
	require.NoError(t, err)

	assert.Equal(t, checkout.Form{
		FullName:      "Asha Rao",
		Phone:         "9999999999",
		Email:         "asha@example.com",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "karnataka",
		Pincode:       "560001",
		PaymentMethod: "upi",
	}, form)
	assert.NoError(t, form.Validate())
}

func TestPlaceOrder(t *testing.T) {
	c := cart.New()
	rec := &recordingNotifier{}
	placedAt := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)
	svc := checkout.New(c,
		checkout.WithDelay(time.Millisecond),
		checkout.WithNotifier(rec),
		checkout.WithClock(func() time.Time { return placedAt }),
	)

	p := product("10", "2")
	c.Add(p, false, 2, "M", "Black")
	c.Add(p, true, 1, "M", "Black")
	wantTotal := c.Total()

	form := randomForm()
	order, err := svc.PlaceOrder(t.Context(), form)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.True(t, wantTotal.Equal(order.Total.Amount))
	assert.Equal(t, domain.BaseCurrency, order.Total.Currency)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, 3, order.ItemCount())
	assert.Equal(t, domain.PaymentMethod(form.PaymentMethod), order.PaymentMethod)
	assert.Equal(t, domain.OrderConfirmed, order.Status)
	assert.Equal(t, placedAt, order.PlacedAt)

	assert.Equal(t, 0, c.Count())
	assert.True(t, c.Total().IsZero())
	assert.False(t, svc.Submitting())

	orders := svc.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	got, err := svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	require.Len(t, rec.all(), 1)
	assert.Equal(t, checkout.NoticeOrderPlaced, rec.all()[0].Kind)
}

func TestPlaceOrder_DisplayTotal(t *testing.T) {
	c := cart.New()
	svc := checkout.New(c, checkout.WithDelay(0))

	c.Add(product("29.99", "5.99"), false, 1, "", "")
	c.Add(product("59.99", "12.99"), true, 2, "", "")

	order, err := svc.PlaceOrder(t.Context(), randomForm())
	require.NoError(t, err)

	// (29.99 + 2*12.99) * 80 = 4477.6
	assert.Equal(t, "4478", order.Total.ToDisplay().Amount.String())
	assert.Equal(t, domain.DisplayCurrency, order.Total.ToDisplay().Currency)
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc := checkout.New(cart.New(), checkout.WithDelay(0))

	_, err := svc.Submit(randomForm())
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Empty(t, svc.Orders())
	assert.False(t, svc.Submitting())
}

func TestSubmit_CartHeldUntilPlaced(t *testing.T) {
	c := cart.New()
	svc := checkout.New(c, checkout.WithDelay(50*time.Millisecond))
	ordered := product("10", "2")
	c.Add(ordered, false, 1, "", "")

	result, err := svc.Submit(randomForm())
	require.NoError(t, err)
	assert.True(t, c.Held())

	_, err = c.Add(product("20", "4"), false, 1, "", "")
	require.ErrorIs(t, err, cart.ErrHeld)
	require.ErrorIs(t, c.Clear(), cart.ErrHeld)
	require.ErrorIs(t, c.UpdateQuantity(ordered.ID, false, 4), cart.ErrHeld)

	order := <-result
	require.Len(t, order.Lines, 1)
	assert.Equal(t, ordered.ID, order.Lines[0].Product.ID)
	assert.True(t, decimal.NewFromInt(10).Equal(order.Total.Amount))

	assert.False(t, c.Held())
	assert.Equal(t, 0, c.Len())

	_, err = c.Add(product("20", "4"), false, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestSubmit_InvalidFormKeepsCart(t *testing.T) {
	c := cart.New()
	rec := &recordingNotifier{}
	svc := checkout.New(c, checkout.WithDelay(0), checkout.WithNotifier(rec))
	c.Add(product("10", "2"), false, 3, "", "")

	form := randomForm()
	form.Email = ""

	_, err := svc.Submit(form)

	var verr *checkout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, 3, c.Count())
	assert.False(t, svc.Submitting())
	assert.False(t, c.Held())

	notices := rec.all()
	require.Len(t, notices, 1)
	assert.Equal(t, checkout.NoticeValidationFailed, notices[0].Kind)
	assert.Equal(t, "Please enter your email address", notices[0].Message)
}

func TestSubmit_InProgress(t *testing.T) {
	c := cart.New()
	svc := checkout.New(c, checkout.WithDelay(50*time.Millisecond))
	c.Add(product("10", "2"), false, 1, "", "")

	result, err := svc.Submit(randomForm())
	require.NoError(t, err)
	assert.True(t, svc.Submitting())

	_, err = svc.Submit(randomForm())
	require.ErrorIs(t, err, checkout.ErrSubmissionInProgress)

	order, ok := <-result
	require.True(t, ok)
	assert.Equal(t, 1, order.ItemCount())

	_, ok = <-result
	assert.False(t, ok, "result channel is closed after delivery")

	require.Len(t, svc.Orders(), 1)
}

func TestPlaceOrder_ContextCanceledStillCompletes(t *testing.T) {
	c := cart.New()
	svc := checkout.New(c, checkout.WithDelay(20*time.Millisecond))
	c.Add(product("10", "2"), false, 1, "", "")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := svc.PlaceOrder(ctx, randomForm())
	require.ErrorIs(t, err, context.Canceled)

	svc.Wait()

	assert.Equal(t, 0, c.Count())
	assert.Len(t, svc.Orders(), 1)
}

func TestOrders_NewestFirst(t *testing.T) {
	c := cart.New()
	svc := checkout.New(c, checkout.WithDelay(0))

	var ids []uuid.UUID
	for range 3 {
		c.Add(product("10", "2"), false, 1, "", "")
		order, err := svc.PlaceOrder(t.Context(), randomForm())
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders := svc.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[0], orders[2].ID)
}

func TestRequestReturnAndExchange(t *testing.T) {
	c := cart.New()
	rec := &recordingNotifier{}
	svc := checkout.New(c, checkout.WithDelay(0), checkout.WithNotifier(rec))
	c.Add(product("10", "2"), false, 1, "M", "")

	order, err := svc.PlaceOrder(t.Context(), randomForm())
	require.NoError(t, err)

	tests := []struct {
		name      string
		run       func() error
		wantError string
		wantIs    error
	}{
		{
			name: "return: ok",
			run: func() error {
				return svc.RequestReturn(order.ID, checkout.ReturnRequest{Reason: "too small", PickupAddress: "12 MG Road"})
			},
		},
		{
			name: "return without pickup address: error",
			run: func() error {
				return svc.RequestReturn(order.ID, checkout.ReturnRequest{Reason: "too small"})
			},
			wantError: "Please fill in all the required fields.",
		},
		{
			name: "return of unknown order: error",
			run: func() error {
				return svc.RequestReturn(uuid.New(), checkout.ReturnRequest{Reason: "x", PickupAddress: "y"})
			},
			wantIs: checkout.ErrOrderNotFound,
		},
		{
			name: "exchange: ok",
			run: func() error {
				return svc.RequestExchange(order.ID, checkout.ExchangeRequest{Size: "L"})
			},
		},
		{
			name: "exchange without size: error",
			run: func() error {
				return svc.RequestExchange(order.ID, checkout.ExchangeRequest{})
			},
			wantError: "Please select the new size.",
		},
		{
			name: "exchange of unknown order: error",
			run: func() error {
				return svc.RequestExchange(uuid.New(), checkout.ExchangeRequest{Size: "L"})
			},
			wantIs: checkout.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			switch {
			case tt.wantError != "":
				require.EqualError(t, err, tt.wantError)
			case tt.wantIs != nil:
				require.True(t, errors.Is(err, tt.wantIs))
			default:
				require.NoError(t, err)
			}
		})
	}

	kinds := make([]string, 0)
	for _, n := range rec.all() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []string{
		checkout.NoticeOrderPlaced,
		checkout.NoticeReturnRequested,
		checkout.NoticeExchangeRequested,
	}, kinds)
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []port.Notice
}

func (r *recordingNotifier) Notify(n port.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) all() []port.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]port.Notice(nil), r.notices...)
}

func product(price, rentPrice string) domain.Product {
	return domain.Product{
		ID:        gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		Category:  domain.CategoryTops,
		Price:     decimal.RequireFromString(price),
		RentPrice: decimal.RequireFromString(rentPrice),
		InStock:   true,
	}
}

func randomForm() checkout.Form {
	return checkout.Form{
		FullName:      gofakeit.Name(),
		Phone:         gofakeit.Phone(),
		Email:         gofakeit.Email(),
		Address:       gofakeit.Street(),
		City:          gofakeit.City(),
		State:         gofakeit.RandomString(domain.ShippingStates),
		Pincode:       gofakeit.Zip(),
		PaymentMethod: gofakeit.RandomString([]string{"cod", "card", "upi"}),
	}
}
