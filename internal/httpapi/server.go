// Package httpapi exposes the catalog, cart and checkout over JSON HTTP.
//
// Handlers are the calling surface the cart store trusts: they check that a
// product exists, that a size is chosen when the product has sizes, and clamp
// quantity updates to at least one before touching the store.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rentwear/storefront/internal/cart"
	"github.com/rentwear/storefront/internal/catalog"
	"github.com/rentwear/storefront/internal/checkout"
	"go.uber.org/zap"
)

type Server struct {
	catalog  *catalog.Store
	cart     *cart.Store
	checkout *checkout.Service
	logger   *zap.Logger
	origins  []string
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

func New(cat *catalog.Store, c *cart.Store, co *checkout.Service, opts ...Option) *Server {
	s := &Server{
		catalog:  cat,
		cart:     c,
		checkout: co,
		logger:   zap.NewNop(),
		origins:  []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.listCategories)
		r.Get("/rental-durations", s.listRentalDurations)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Get("/featured", s.listFeatured)
			r.Get("/{productID}", s.getProduct)
			r.Get("/{productID}/quote", s.quoteRental)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.getCart)
			r.Delete("/", s.clearCart)
			r.Post("/items", s.addCartItem)
			r.Patch("/items/{productID}", s.updateCartItem)
			r.Delete("/items/{productID}", s.removeCartItem)
		})

		r.Post("/checkout", s.placeOrder)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.listOrders)
			r.Get("/{orderID}", s.getOrder)
			r.Post("/{orderID}/return", s.requestReturn)
			r.Post("/{orderID}/exchange", s.requestExchange)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
