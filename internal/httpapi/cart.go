package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rentwear/storefront/internal/cart"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type lineResponse struct {
	ProductID        string          `json:"productId"`
	Name             string          `json:"name"`
	Image            string          `json:"image"`
	Quantity         int             `json:"quantity"`
	IsRental         bool            `json:"isRental"`
	Size             string          `json:"size,omitempty"`
	Color            string          `json:"color,omitempty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DisplayUnitPrice moneyResponse   `json:"displayUnitPrice"`
}

type cartResponse struct {
	Lines        []lineResponse `json:"lines"`
	Count        int            `json:"count"`
	Total        moneyResponse  `json:"total"`
	DisplayTotal moneyResponse  `json:"displayTotal"`
}

func newLineResponses(lines []domain.CartLine) []lineResponse {
	result := make([]lineResponse, 0, len(lines))
	for _, l := range lines {
		result = append(result, lineResponse{
			ProductID:        l.Product.ID,
			Name:             l.Product.Name,
			Image:            l.Product.Image,
			Quantity:         l.Quantity,
			IsRental:         l.IsRental,
			Size:             l.Size,
			Color:            l.Color,
			UnitPrice:        l.UnitPrice(),
			Subtotal:         l.Subtotal(),
			DisplayUnitPrice: money(domain.NewMoney(l.UnitPrice()).ToDisplay()),
		})
	}
	return result
}

func (s *Server) cartState() cartResponse {
	lines, total := s.cart.Snapshot()

	var count int
	for _, l := range lines {
		count += l.Quantity
	}

	return cartResponse{
		Lines:        newLineResponses(lines),
		Count:        count,
		Total:        money(domain.NewMoney(total)),
		DisplayTotal: money(domain.NewMoney(total).ToDisplay()),
	}
}

func (s *Server) getCart(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cartState())
}

type addItemRequest struct {
	ProductID string `json:"productId" schema:"productId"`
	Rental    bool   `json:"rental" schema:"rental"`
	Quantity  *int   `json:"quantity" schema:"quantity"`
	Size      string `json:"size" schema:"size"`
	Color     string `json:"color" schema:"color"`
}

type mutationResponse struct {
	Message string       `json:"message"`
	Outcome string       `json:"outcome,omitempty"`
	Cart    cartResponse `json:"cart"`
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, ok := s.catalog.GetByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if !p.InStock {
		writeError(w, http.StatusConflict, "Product is out of stock")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	if p.HasSizes() && req.Size == "" {
		writeError(w, http.StatusBadRequest, "Please select a size")
		return
	}
	if req.Size != "" && !p.OffersSize(req.Size) {
		writeError(w, http.StatusBadRequest, "Size is not available for this product")
		return
	}

	color := req.Color
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	if color != "" && !p.OffersColor(color) {
		writeError(w, http.StatusBadRequest, "Color is not available for this product")
		return
	}

	outcome, err := s.cart.Add(p, req.Rental, quantity, req.Size, color)
	if err != nil {
		writeCartError(w, err)
		return
	}

	message := "Added to cart"
	if outcome == cart.QuantityUpdated {
		message = "Updated quantity in cart"
	}

	status := http.StatusCreated
	if outcome == cart.QuantityUpdated {
		status = http.StatusOK
	}

	writeJSON(w, status, mutationResponse{
		Message: message,
		Outcome: outcome.String(),
		Cart:    s.cartState(),
	})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" schema:"quantity"`
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	rental, err := parseRental(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.cart.UpdateQuantity(chi.URLParam(r, "productID"), rental, max(1, req.Quantity)); err != nil {
		writeCartError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		Message: "Updated quantity in cart",
		Cart:    s.cartState(),
	})
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	rental, err := parseRental(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.cart.Remove(chi.URLParam(r, "productID"), rental); err != nil {
		writeCartError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		Message: "Item removed from cart",
		Cart:    s.cartState(),
	})
}

func (s *Server) clearCart(w http.ResponseWriter, _ *http.Request) {
	if err := s.cart.Clear(); err != nil {
		writeCartError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		Message: "Cart cleared",
		Cart:    s.cartState(),
	})
}

func writeCartError(w http.ResponseWriter, err error) {
	if errors.Is(err, cart.ErrHeld) {
		writeError(w, http.StatusConflict, "Your order is being placed, the cart cannot change right now")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
