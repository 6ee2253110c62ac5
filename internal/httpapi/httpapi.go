package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mkravets/shop-analytics/internal/domain"
	"github.com/mkravets/shop-analytics/internal/observability"
)

//go:generate mockgen -source httpapi.go -destination=httpapi_mock_test.go -package=httpapi

// Reports is the slice of the reporting service the HTTP layer consumes.
type Reports interface {
	Overview(ctx context.Context) (json.RawMessage, error)
	Sales(ctx context.Context, timeFrame string) (json.RawMessage, error)
	Users(ctx context.Context) (json.RawMessage, error)
	Inventory(ctx context.Context) (json.RawMessage, error)

	SellerOverview(ctx context.Context, sellerID string) (json.RawMessage, error)
	SellerSales(ctx context.Context, sellerID, timeFrame string) (json.RawMessage, error)
	SellerRecentOrders(ctx context.Context, sellerID string) (json.RawMessage, error)
	SellerLowStock(ctx context.Context, sellerID string) (json.RawMessage, error)

	InvalidateReports(key string) error
}

type Server struct {
	reports Reports
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(reports Reports, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		reports: reports,
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))
	r.Use(Identify)

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(RequireRole(domain.RoleAdmin))
		r.Get("/overview", s.report(func(ctx context.Context, _ *http.Request) (json.RawMessage, error) {
			return s.reports.Overview(ctx)
		}))
		r.Get("/sales", s.report(func(ctx context.Context, req *http.Request) (json.RawMessage, error) {
			return s.reports.Sales(ctx, req.URL.Query().Get("timeFrame"))
		}))
		r.Get("/users", s.report(func(ctx context.Context, _ *http.Request) (json.RawMessage, error) {
			return s.reports.Users(ctx)
		}))
		r.Get("/inventory", s.report(func(ctx context.Context, _ *http.Request) (json.RawMessage, error) {
			return s.reports.Inventory(ctx)
		}))
		r.Post("/clear-cache", s.clearCache)
	})

	r.Route("/seller/dashboard", func(r chi.Router) {
		r.Use(RequireRole(domain.RoleSeller))
		r.Get("/overview", s.report(func(ctx context.Context, req *http.Request) (json.RawMessage, error) {
			return s.reports.SellerOverview(ctx, sellerID(req))
		}))
		r.Get("/sales", s.report(func(ctx context.Context, req *http.Request) (json.RawMessage, error) {
			return s.reports.SellerSales(ctx, sellerID(req), req.URL.Query().Get("timeFrame"))
		}))
		r.Get("/recent-orders", s.report(func(ctx context.Context, req *http.Request) (json.RawMessage, error) {
			return s.reports.SellerRecentOrders(ctx, sellerID(req))
		}))
		r.Get("/low-stock", s.report(func(ctx context.Context, req *http.Request) (json.RawMessage, error) {
			return s.reports.SellerLowStock(ctx, sellerID(req))
		}))
	})

	s.router = r
}

// sellerID comes from the verified identity; RequireRole guarantees it is set.
func sellerID(r *http.Request) string {
	id, _ := FromContext(r.Context())
	return id.UserID
}

// report wraps a report lookup into the shared envelope-and-status handling.
func (s *Server) report(fetch func(ctx context.Context, r *http.Request) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := fetch(r.Context(), r)
		if err != nil {
			status := http.StatusServiceUnavailable
			msg := "report temporarily unavailable"
			if errors.Is(err, domain.ErrInvalidTimeFrame) || errors.Is(err, domain.ErrUnknownReport) {
				status = http.StatusBadRequest
				msg = err.Error()
			} else {
				s.logger.Error("report request failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
			}
			writeError(w, status, msg)
			return
		}
		writeData(w, raw)
	}
}

type clearCacheRequest struct {
	Key string `json:"key"`
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	var req clearCacheRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	// An empty body means "clear everything".
	if len(strings.TrimSpace(string(body))) > 0 {
		dec := json.NewDecoder(strings.NewReader(string(body)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
	}

	if err := s.reports.InvalidateReports(req.Key); err != nil {
		if errors.Is(err, domain.ErrUnknownReport) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("cache invalidation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "invalidation failed")
		return
	}
	writeMessage(w, "cache cleared")
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func writeData(w http.ResponseWriter, data json.RawMessage) {
	writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeEnvelope(w, http.StatusOK, envelope{Success: true, Message: msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, envelope{Success: false, Message: msg})
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
