package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/rentwear/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type moneyResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func money(m domain.Money) moneyResponse {
	return moneyResponse{Amount: m.Amount, Currency: m.Currency.String()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeBody reads JSON bodies with encoding/json and form bodies with gorilla/schema.
func decodeBody(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("r.ParseForm: %w", err)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return fmt.Errorf("formDecoder.Decode: %w", err)
		}
		return nil
	default:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("json.Decode: %w", err)
		}
		return nil
	}
}

// parseRental reads the rental flag from the query; absent means purchase.
func parseRental(r *http.Request) (bool, error) {
	v := r.URL.Query().Get("rental")
	if v == "" {
		return false, nil
	}
	rental, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("rental must be true or false")
	}
	return rental, nil
}
