// Package server exposes the gateway's HTTP surface: PDF upload, export
// download, health and liveness endpoints.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"centris-gateway/internal/common/config"
	apperrors "centris-gateway/internal/common/errors"
	"centris-gateway/internal/common/logger"
	"centris-gateway/internal/common/metrics"
	"centris-gateway/internal/common/observability"
	"centris-gateway/internal/extractor"
)

// Server wires configuration, the extraction mediator and observability
// into an http.Handler.
type Server struct {
	cfg       *config.Config
	logger    logger.Logger
	extractor *extractor.Service
	obs       *observability.Observability
}

func New(cfg *config.Config, log logger.Logger, svc *extractor.Service, obs *observability.Observability) *Server {
	return &Server{
		cfg:       cfg,
		logger:    log,
		extractor: svc,
		obs:       obs,
	}
}

// Handler builds the route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/extract-pdf", s.handleExtract)
	mux.HandleFunc("/export-excel", s.handleExport)
	mux.Handle("/metrics", promhttp.Handler())

	return s.corsMiddleware(s.requestMiddleware(mux))
}

// requestMiddleware attaches a request ID, records latency metrics and opens
// a tracing span per request.
func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		ctx, span := s.obs.StartSpan(r.Context(), r.Method+" "+r.URL.Path)
		if span != nil {
			defer span.End()
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(recorder, r.WithContext(ctx))

		duration := time.Since(start)
		metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(duration.Seconds())
		s.obs.RecordRequest(ctx, r.URL.Path, http.StatusText(recorder.status))
		s.obs.RecordRequestDuration(ctx, duration, r.URL.Path)

		s.logger.Info("Request completed", map[string]interface{}{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   duration.String(),
		})
	})
}

// corsMiddleware answers preflight requests and mirrors allowed origins.
// An empty allow list means any origin.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	if len(s.cfg.Server.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.cfg.Server.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, stdErr *apperrors.StandardError) {
	fields := map[string]interface{}{
		"code":    string(stdErr.Code),
		"message": stdErr.Message,
		"details": stdErr.Details,
	}
	if apperrors.IsClientError(stdErr.Code) {
		s.logger.Warn("Request rejected", fields)
	} else {
		s.logger.Error("Request failed", fields)
	}

	s.writeJSON(w, apperrors.HTTPStatus(stdErr.Code), map[string]string{
		"error":   stdErr.Message,
		"message": stdErr.Details,
	})
}
