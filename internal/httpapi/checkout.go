package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rentwear/storefront/internal/checkout"
	"github.com/rentwear/storefront/internal/domain"
	"go.uber.org/zap"
)

type orderResponse struct {
	ID            uuid.UUID              `json:"id"`
	Status        domain.OrderStatus     `json:"status"`
	PlacedAt      time.Time              `json:"placedAt"`
	Lines         []lineResponse         `json:"lines"`
	ItemCount     int                    `json:"itemCount"`
	Total         moneyResponse          `json:"total"`
	DisplayTotal  moneyResponse          `json:"displayTotal"`
	PaymentMethod domain.PaymentMethod   `json:"paymentMethod"`
	Shipping      domain.ShippingDetails `json:"shipping"`
}

func newOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		Status:        o.Status,
		PlacedAt:      o.PlacedAt,
		Lines:         newLineResponses(o.Lines),
		ItemCount:     o.ItemCount(),
		Total:         money(o.Total),
		DisplayTotal:  money(o.Total.ToDisplay()),
		PaymentMethod: o.PaymentMethod,
		Shipping:      o.Shipping,
	}
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.checkout.PlaceOrder(r.Context(), form)
	if err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.Int("items", order.ItemCount()),
		zap.String("total", order.Total.String()))

	writeJSON(w, http.StatusCreated, newOrderResponse(order))
}

func (s *Server) listOrders(w http.ResponseWriter, _ *http.Request) {
	orders := s.checkout.Orders()

	result := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, newOrderResponse(o))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := s.checkout.GetOrder(id)
	if err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newOrderResponse(order))
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) requestReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req checkout.ReturnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.checkout.RequestReturn(id, req); err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, messageResponse{Message: "Return Request Confirmed"})
}

func (s *Server) requestExchange(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req checkout.ExchangeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.checkout.RequestExchange(id, req); err != nil {
		s.writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, messageResponse{Message: "Exchange Request Confirmed"})
}

func orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusNotFound, checkout.ErrOrderNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) writeCheckoutError(w http.ResponseWriter, err error) {
	var verr *checkout.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrSubmissionInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// the submission still completes; the caller stopped waiting
		s.logger.Warn("checkout wait abandoned", zap.Error(err))
		writeError(w, http.StatusAccepted, "order is being processed")
	default:
		s.logger.Error("checkout failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
