package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/StockDesk_Go/internal/account"
	"github.com/osse101/StockDesk_Go/internal/database"
	"github.com/osse101/StockDesk_Go/internal/handler"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/metrics"
	"github.com/osse101/StockDesk_Go/internal/middleware"
	"github.com/osse101/StockDesk_Go/internal/portfolio"
	"github.com/osse101/StockDesk_Go/internal/securities"
	"github.com/osse101/StockDesk_Go/internal/user"
)

// Options controls the listener and request guards
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Services are the domain services the routes dispatch to
type Services struct {
	DB         database.Pool
	Users      user.Service
	Accounts   account.Service
	Securities securities.Service
	Portfolios portfolio.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routing tree.
func NewRouter(opts Options, svc Services) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()
	proxies := ParseTrustedProxies(opts.TrustedProxies)

	// Executed outermost to innermost
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Session
	r.Post("/users", handler.HandleRegisterUser(svc.Users))
	r.Post("/login", handler.HandleLogin(svc.Users))
	r.Post("/logout", handler.HandleLogout(svc.Users))

	// Catalog reads are public, writes need the API key when one is configured
	r.Get("/securities", handler.HandleListSecurities(svc.Securities))
	r.Group(func(r chi.Router) {
		r.Use(APIKeyMiddleware(opts.APIKey, proxies, detector))
		r.Post("/securities", handler.HandleCreateSecurity(svc.Securities))
		r.Put("/securities/{security_id}", handler.HandleUpdateSecurityPrice(svc.Securities))
		r.Delete("/securities/{security_id}", handler.HandleDeleteSecurity(svc.Securities))
		r.Get("/admin/cache/stats", handler.HandleGetCacheStats(svc.Users))
	})

	// Bearer-authenticated account routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(svc.Users))
		r.Get("/history", handler.HandleGetHistory(svc.Users))
		r.Get("/balance", handler.HandleGetBalance(svc.Accounts))
		r.Post("/transactions", handler.HandleCreateTransaction(svc.Accounts))
		r.Get("/transactions", handler.HandleListTransactions(svc.Accounts))
		r.Post("/portfolios", handler.HandleCreatePortfolio(svc.Portfolios))
		r.Get("/portfolios", handler.HandleListPortfolios(svc.Portfolios))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
