package health

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lip-protocol/lip-coordinator/pkg/cache"
	"github.com/lip-protocol/lip-coordinator/pkg/circuitbreaker"
)

// LedgerStatus is the minimal ledger surface the status endpoints probe
type LedgerStatus interface {
	GetIntentCount(ctx context.Context) (uint64, error)
	Account() common.Address
}

// Server represents the health and metrics HTTP server
type Server struct {
	port          string
	chainID       int64
	ledger        LedgerStatus
	cache         *cache.IntentCache
	breaker       *circuitbreaker.CircuitBreaker
	metricsAPIKey string

	srv *http.Server
}

// NewServer creates a new health check server
func NewServer(port string, chainID int64, ledger LedgerStatus, intentCache *cache.IntentCache, breaker *circuitbreaker.CircuitBreaker) *Server {
	return &Server{
		port:          port,
		chainID:       chainID,
		ledger:        ledger,
		cache:         intentCache,
		breaker:       breaker,
		metricsAPIKey: os.Getenv("METRICS_API_KEY"),
	}
}

// metricsAuthMiddleware is a middleware that checks for a valid API key
func (s *Server) metricsAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth if no API key is configured
		if s.metricsAPIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Get API key from Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		// Check if the header has the correct format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		// Validate API key
		if parts[1] != s.metricsAPIKey {
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler builds the route table for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness check: the ledger must answer a read
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := s.ledger.GetIntentCount(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("Ledger not reachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Ready"))
	})

	// Service status endpoint
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		circuitStatus := "closed"
		if s.breaker != nil && s.breaker.IsOpen() {
			circuitStatus = "open"
		}

		status := map[string]interface{}{
			"chain_id": s.chainID,
			"account":  s.ledger.Account().Hex(),
			"circuit":  circuitStatus,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if count, err := s.ledger.GetIntentCount(ctx); err == nil {
			status["intent_count"] = count
		}

		if s.cache != nil {
			status["cached_intents"] = s.cache.Len()
			if last := s.cache.LastRefresh(); !last.IsZero() {
				status["last_refresh"] = last.UTC().Format(time.RFC3339)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("Error encoding status JSON: %v", err)
		}
	})

	// Circuit breaker admin control endpoint
	mux.HandleFunc("/circuit/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if s.breaker == nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("No circuit breaker configured"))
			return
		}

		s.breaker.Reset()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Circuit breaker reset"))
	})

	// Expose Prometheus metrics with API key authentication
	mux.Handle("/metrics", s.metricsAuthMiddleware(promhttp.Handler()))

	return mux
}

// Start starts the health check server and blocks until it exits
func (s *Server) Start() {
	s.srv = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	log.Printf("Starting health and metrics server on port %s", s.port)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Health server error: %v", err)
	}
}

// Shutdown gracefully stops the health check server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
