// Package cart holds the process-local shopping cart.
//
// The store trusts its caller for the validity of quantity, size and color:
// it neither rejects a missing size nor clamps quantities. Remove and
// UpdateQuantity match lines on (product id, rental flag) only, so they
// affect every size/color variant of that pair, while Add merges on the full
// line key.
//
// A checkout holds the cart while it submits: mutations are refused with
// ErrHeld until the holder settles or releases it.
package cart

import (
	"errors"
	"slices"
	"sync"

	"github.com/rentwear/storefront/internal/domain"
	"github.com/rentwear/storefront/internal/port"
	"github.com/shopspring/decimal"
)

// Outcome tells whether Add appended a line or merged into an existing one.
type Outcome int

const (
	ItemAdded Outcome = iota
	QuantityUpdated
)

func (o Outcome) String() string {
	switch o {
	case ItemAdded:
		return "item_added"
	case QuantityUpdated:
		return "quantity_updated"
	default:
		return "unknown"
	}
}

const (
	NoticeItemAdded       = "item_added"
	NoticeQuantityUpdated = "quantity_updated"
	NoticeItemRemoved     = "item_removed"
)

var ErrHeld = errors.New("cart is held by a checkout in progress")

type Store struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	held     bool
	notifier port.Notifier
}

type Option func(*Store)

func WithNotifier(n port.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{notifier: port.NopNotifier{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Add(product domain.Product, isRental bool, quantity int, size, color string) (Outcome, error) {
	s.mu.Lock()
	if s.held {
		s.mu.Unlock()
		return 0, ErrHeld
	}
	outcome := s.add(product, isRental, quantity, size, color)
	s.mu.Unlock()

	if outcome == QuantityUpdated {
		s.notify(NoticeQuantityUpdated, "Updated quantity in cart", product.ID, isRental)
	} else {
		s.notify(NoticeItemAdded, "Added to cart", product.ID, isRental)
	}

	return outcome, nil
}

func (s *Store) add(product domain.Product, isRental bool, quantity int, size, color string) Outcome {
	key := domain.LineKey{
		ProductID: product.ID,
		IsRental:  isRental,
		Size:      size,
		Color:     color,
	}

	i := slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.Key() == key
	})
	if i >= 0 {
		s.lines[i].Quantity += quantity
		return QuantityUpdated
	}

	s.lines = append(s.lines, domain.CartLine{
		Product:  product,
		Quantity: quantity,
		IsRental: isRental,
		Size:     size,
		Color:    color,
	})
	return ItemAdded
}

// Remove drops every line of productID with the given rental flag.
func (s *Store) Remove(productID string, isRental bool) error {
	s.mu.Lock()
	if s.held {
		s.mu.Unlock()
		return ErrHeld
	}
	s.lines = slices.DeleteFunc(s.lines, func(l domain.CartLine) bool {
		return matches(l, productID, isRental)
	})
	s.mu.Unlock()

	s.notify(NoticeItemRemoved, "Item removed from cart", productID, isRental)
	return nil
}

// UpdateQuantity sets quantity on every line of productID with the given rental flag.
func (s *Store) UpdateQuantity(productID string, isRental bool, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held {
		return ErrHeld
	}
	for i := range s.lines {
		if matches(s.lines[i], productID, isRental) {
			s.lines[i].Quantity = quantity
		}
	}
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held {
		return ErrHeld
	}
	s.lines = nil
	return nil
}

// Hold freezes the cart and returns the lines and total it froze.
func (s *Store) Hold() ([]domain.CartLine, decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held {
		return nil, decimal.Zero, ErrHeld
	}
	s.held = true
	return slices.Clone(s.lines), total(s.lines), nil
}

// Release lifts a hold and leaves the lines untouched.
func (s *Store) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.held = false
}

// Settle empties the cart and lifts the hold.
func (s *Store) Settle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.held = false
}

func (s *Store) Held() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.held
}

// Total is recomputed from the current lines on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return total(s.lines)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

// Snapshot returns the lines and their total read under one lock.
func (s *Store) Snapshot() ([]domain.CartLine, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines), total(s.lines)
}

func total(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func matches(l domain.CartLine, productID string, isRental bool) bool {
	return l.Product.ID == productID && l.IsRental == isRental
}

func (s *Store) notify(kind, message, productID string, isRental bool) {
	mode := "purchase"
	if isRental {
		mode = "rental"
	}

	s.notifier.Notify(port.Notice{
		Kind:    kind,
		Message: message,
		Fields: map[string]string{
			"product_id": productID,
			"mode":       mode,
		},
	})
}
