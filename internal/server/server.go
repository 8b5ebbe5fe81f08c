package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/CraftEconomy_Go/docs"
	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/crafting"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/handler"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
	"github.com/osse101/CraftEconomy_Go/internal/route"
)

// Feed is the read side of the market feed the server needs
type Feed interface {
	handler.MarketFeed
	handler.ReadinessChecker
}

// Options configures the HTTP edge
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	ClientRateLimit int
	ClientBurst     int
}

// Dependencies are the services behind the API
type Dependencies struct {
	Feed       Feed
	Resolver   *pricing.Resolver
	Refresher  handler.Refresher // nil disables POST /market/refresh
	History    handler.HistorySource
	Bonus      *bonus.Calculator
	Activities map[domain.Category]crafting.Activity
	Crafting   crafting.Service
	Characters handler.CharacterProvider
	Routes     route.Service
	Gatherer   prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
		},
	}
}

// NewRouter builds the chi router with the middleware stack and every route
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.ClientRateLimit, opts.ClientBurst)

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Feed))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/prices", handler.HandleGetPrices(deps.Feed, deps.Resolver))

		r.Route("/market", func(r chi.Router) {
			r.Get("/status", handler.HandleMarketStatus(deps.Feed))
			r.Post("/refresh", handler.HandleMarketRefresh(deps.Refresher, deps.Feed))
			r.Get("/history/{item}", handler.HandleMarketHistory(deps.History))
		})

		r.Post("/bonus", handler.HandleBonus(deps.Bonus, deps.Activities, deps.Crafting))
		r.Post("/focus", handler.HandleFocus(deps.Activities, deps.Crafting, deps.Characters))
		r.Post("/craft", handler.HandleCraftEstimate(deps.Crafting))

		r.Get("/recipes", handler.HandleListRecipes(deps.Crafting, deps.Activities))
		r.Get("/recipes/{id}", handler.HandleGetRecipe(deps.Crafting))

		r.Post("/route", handler.HandleRouteEvaluate(deps.Routes))
		r.Post("/route/plan", handler.HandleRoutePlan(deps.Routes))

		r.Get("/admin/metrics", handler.HandleAdminMetrics(deps.Gatherer))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

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
		statusCode:     http.StatusOK, // default status
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

// loggingMiddleware tags every request with an id and logs start and completion.
// A caller-supplied X-Request-ID is reused so traces line up across services.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health checks and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
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

		sanitizedHeaders := make(http.Header)
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
