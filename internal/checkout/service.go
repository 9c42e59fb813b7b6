// Package checkout simulates order placement on top of the cart store and
// keeps the orders confirmed during the process lifetime.
package checkout

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rentwear/storefront/internal/cart"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/rentwear/storefront/internal/port"
)

const DefaultDelay = 1500 * time.Millisecond

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrSubmissionInProgress = errors.New("order submission is in progress")
	ErrOrderNotFound        = errors.New("order not found")
)

const (
	NoticeValidationFailed  = "validation_failed"
	NoticeOrderPlaced       = "order_placed"
	NoticeReturnRequested   = "return_requested"
	NoticeExchangeRequested = "exchange_requested"
)

type Service struct {
	cart     *cart.Store
	notifier port.Notifier
	delay    time.Duration
	now      func() time.Time

	mu         sync.Mutex
	submitting bool
	orders     []domain.Order
	wg         sync.WaitGroup
}

type Option func(*Service)

func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = d
	}
}

func WithNotifier(n port.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(c *cart.Store, opts ...Option) *Service {
	s := &Service{
		cart:     c,
		notifier: port.NopNotifier{},
		delay:    DefaultDelay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the form and starts the simulated submission.
// The cart is held from acceptance until the order is recorded, so the order
// carries exactly the lines that are cleared. Once accepted, a submission
// always completes: after the delay the cart is cleared, the order recorded
// and delivered on the returned channel.
func (s *Service) Submit(form Form) (<-chan domain.Order, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	s.submitting = true
	s.mu.Unlock()

	lines, total, err := s.cart.Hold()
	if err != nil {
		s.finish()
		return nil, ErrSubmissionInProgress
	}
	if len(lines) == 0 {
		s.abort()
		return nil, ErrEmptyCart
	}

	if err := form.Validate(); err != nil {
		s.abort()
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.notifier.Notify(port.Notice{
				Kind:    NoticeValidationFailed,
				Message: verr.Message,
				Fields:  map[string]string{"field": verr.Field},
			})
		}
		return nil, err
	}

	order := domain.Order{
		ID:            uuid.New(),
		Lines:         lines,
		Total:         domain.NewMoney(total),
		Shipping:      form.shipping(),
		PaymentMethod: form.paymentMethod(),
		Status:        domain.OrderConfirmed,
	}

	result := make(chan domain.Order, 1)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(result)

		timer := time.NewTimer(s.delay)
		<-timer.C

		order.PlacedAt = s.now()

		s.mu.Lock()
		s.orders = append(s.orders, order)
		s.submitting = false
		s.cart.Settle()
		s.mu.Unlock()

		s.notifier.Notify(port.Notice{
			Kind:    NoticeOrderPlaced,
			Message: "Order placed successfully",
			Fields:  map[string]string{"order_id": order.ID.String()},
		})

		result <- order
	}()

	return result, nil
}

func (s *Service) abort() {
	s.cart.Release()
	s.finish()
}

func (s *Service) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
}

// PlaceOrder submits the form and waits for confirmation. When ctx ends first
// the submission keeps running and ctx.Err() is returned.
func (s *Service) PlaceOrder(ctx context.Context, form Form) (domain.Order, error) {
	result, err := s.Submit(form)
	if err != nil {
		return domain.Order{}, err
	}

	select {
	case order := <-result:
		return order, nil
	case <-ctx.Done():
		return domain.Order{}, ctx.Err()
	}
}

// Wait blocks until in-flight submissions complete.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitting
}

// Orders returns confirmed orders, newest first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := slices.Clone(s.orders)
	slices.Reverse(orders)
	return orders
}

func (s *Service) GetOrder(id uuid.UUID) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.orders, func(o domain.Order) bool {
		return o.ID == id
	})
	if i < 0 {
		return domain.Order{}, ErrOrderNotFound
	}
	return s.orders[i], nil
}

func (s *Service) RequestReturn(orderID uuid.UUID, req ReturnRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.GetOrder(orderID); err != nil {
		return err
	}

	s.notifier.Notify(port.Notice{
		Kind:    NoticeReturnRequested,
		Message: "Our team will pick up your order from the provided address within 2-3 business days.",
		Fields:  map[string]string{"order_id": orderID.String()},
	})
	return nil
}

func (s *Service) RequestExchange(orderID uuid.UUID, req ExchangeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.GetOrder(orderID); err != nil {
		return err
	}

	s.notifier.Notify(port.Notice{
		Kind:    NoticeExchangeRequested,
		Message: "Please visit our store within 2 hours. Bring your original item for a quick exchange.",
		Fields:  map[string]string{"order_id": orderID.String(), "size": req.Size},
	})
	return nil
}
