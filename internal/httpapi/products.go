package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rentwear/storefront/internal/catalog"
	"github.com/rentwear/storefront/internal/domain"
)

type productResponse struct {
	domain.Product

	DisplayPrice     moneyResponse `json:"displayPrice"`
	DisplayRentPrice moneyResponse `json:"displayRentPrice"`
}

func newProductResponse(p domain.Product) productResponse {
	return productResponse{
		Product:          p,
		DisplayPrice:     money(domain.NewMoney(p.Price).ToDisplay()),
		DisplayRentPrice: money(domain.NewMoney(p.RentPrice).ToDisplay()),
	}
}

func newProductResponses(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, newProductResponse(p))
	}
	return result
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Categories())
}

func (s *Server) listRentalDurations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.RentalDurations())
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	products := s.catalog.Find(catalog.Query{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sizes:    q["size"],
	})

	writeJSON(w, http.StatusOK, newProductResponses(products))
}

func (s *Server) listFeatured(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newProductResponses(s.catalog.GetFeatured()))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.catalog.GetByID(chi.URLParam(r, "productID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, newProductResponse(p))
}

type quoteResponse struct {
	ProductID      string             `json:"productId"`
	Days           domain.RentalDays  `json:"days"`
	BuyPrice       moneyResponse      `json:"buyPrice"`
	DailyRentPrice moneyResponse      `json:"dailyRentPrice"`
	TotalRentPrice moneyResponse      `json:"totalRentPrice"`
	Display        quoteDisplayPrices `json:"display"`
}

type quoteDisplayPrices struct {
	BuyPrice       moneyResponse `json:"buyPrice"`
	DailyRentPrice moneyResponse `json:"dailyRentPrice"`
	TotalRentPrice moneyResponse `json:"totalRentPrice"`
}

func (s *Server) quoteRental(w http.ResponseWriter, r *http.Request) {
	p, ok := s.catalog.GetByID(chi.URLParam(r, "productID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	days := 1
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a number")
			return
		}
		days = n
	}

	d, err := domain.ParseRentalDays(days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote := domain.RentalQuote(p, d)
	writeJSON(w, http.StatusOK, quoteResponse{
		ProductID:      p.ID,
		Days:           quote.Days,
		BuyPrice:       money(quote.BuyPrice),
		DailyRentPrice: money(quote.DailyFee),
		TotalRentPrice: money(quote.Total),
		Display: quoteDisplayPrices{
			BuyPrice:       money(quote.BuyPrice.ToDisplay()),
			DailyRentPrice: money(quote.DailyFee.ToDisplay()),
			TotalRentPrice: money(quote.Total.ToDisplay()),
		},
	})
}
