package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/zombar/plagcheck/internal/models"
	"github.com/zombar/plagcheck/internal/rephraser"
	"github.com/zombar/plagcheck/pkg/logging"
	"github.com/zombar/plagcheck/pkg/metrics"
	"github.com/zombar/plagcheck/pkg/tracing"
)

const tracerName = "github.com/zombar/plagcheck/internal/api"

// Scorer computes a plagiarism risk assessment for a text
type Scorer interface {
	Analyze(text string) models.AnalysisResult
}

// Substitutor rewrites a text with synonym substitution
type Substitutor interface {
	Rephrase(text string, style rephraser.Style, creativity rephraser.Creativity) models.SubstitutionResult
}

// Options configures request limits and the observability sinks of a Handler
type Options struct {
	MinAnalyzeChars  int
	MinRephraseChars int
	MaxBodyBytes     int64
	AllowedOrigins   []string
	Namespace        string
	Logger           *slog.Logger
	Registry         *prometheus.Registry
}

// DefaultOptions returns the limits used when no configuration is supplied
func DefaultOptions() Options {
	return Options{
		MinAnalyzeChars:  50,
		MinRephraseChars: 10,
		MaxBodyBytes:     1 << 20,
		AllowedOrigins:   []string{"*"},
		Namespace:        "plagcheck",
	}
}

// Handler handles HTTP requests
type Handler struct {
	scorer      Scorer
	substitutor Substitutor
	opts        Options
	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	engine      *metrics.EngineMetrics
	httpMetrics *metrics.HTTPMetrics
	mux         *http.ServeMux
}

// ValidationError is a request rejected before reaching the engine
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newHandler(scorer Scorer, substitutor Substitutor, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if opts.Registry != nil {
		reg, gatherer = opts.Registry, opts.Registry
	}

	h := &Handler{
		scorer:      scorer,
		substitutor: substitutor,
		opts:        opts,
		logger:      opts.Logger,
		gatherer:    gatherer,
		engine:      metrics.NewEngineMetrics(opts.Namespace, reg),
		httpMetrics: metrics.NewHTTPMetrics(opts.Namespace, reg),
		mux:         http.NewServeMux(),
	}
	h.setupRoutes()
	return h
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(scorer Scorer, substitutor Substitutor, opts Options) http.Handler {
	h := newHandler(scorer, substitutor, opts)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	// Metrics sit outside CORS so preflight requests are counted too
	return h.httpMetrics.Middleware(c.Handler(h.mux))
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	h.mux.HandleFunc("/api/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/api/rephrase", h.handleRephrase)
	h.mux.HandleFunc("/analyze", h.handleAnalyze)
	h.mux.HandleFunc("/rephrase", h.handleRephrase)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type rephraseRequest struct {
	Text       string `json:"text"`
	Style      string `json:"style,omitempty"`
	Creativity string `json:"creativity,omitempty"`
}

// handleAnalyze scores a text synchronously
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := h.decode(w, r, &req); err != nil {
		h.reject(w, r, "analyze", err)
		return
	}
	if err := validateText(req.Text, h.opts.MinAnalyzeChars, "for meaningful analysis"); err != nil {
		h.reject(w, r, "analyze", err)
		return
	}

	tracing.SetSpanAttributes(r.Context(), attribute.Int("text.length", len(req.Text)))

	_, span := otel.Tracer(tracerName).Start(r.Context(), "engine.score")
	result, err := safeCall(func() models.AnalysisResult {
		return h.scorer.Analyze(req.Text)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		h.fail(w, r, "analysis", err)
		return
	}
	span.SetAttributes(
		attribute.Float64("plagiarism.score", result.PlagiarismScore),
		attribute.String("plagiarism.level", result.PlagiarismLevel),
		attribute.Int("plagiarism.suspicious_patterns", result.SuspiciousPatterns),
		attribute.Int("text.words", result.TextAnalysis.TotalWords),
	)
	span.End()

	h.engine.Analyses.WithLabelValues(result.PlagiarismLevel).Inc()
	h.engine.Scores.Observe(result.PlagiarismScore)
	logging.LogRequest(h.logger, slog.LevelDebug, r, "analysis_completed",
		slog.Float64("score", result.PlagiarismScore),
		slog.String("level", result.PlagiarismLevel),
		slog.Int("words", result.TextAnalysis.TotalWords),
	)

	h.respondJSON(w, result, http.StatusOK)
}

// handleRephrase rewrites a text synchronously
func (h *Handler) handleRephrase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rephraseRequest
	if err := h.decode(w, r, &req); err != nil {
		h.reject(w, r, "rephrase", err)
		return
	}
	if err := validateText(req.Text, h.opts.MinRephraseChars, "for rephrasing"); err != nil {
		h.reject(w, r, "rephrase", err)
		return
	}

	style := rephraser.DefaultStyle
	if req.Style != "" {
		style = rephraser.Style(strings.ToLower(req.Style))
		if !style.Valid() {
			h.reject(w, r, "rephrase", &ValidationError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("Unknown style %q: must be one of academic, formal, casual, simple", req.Style),
			})
			return
		}
	}
	// Unrecognized creativity levels fall back to the default instead of
	// failing the request
	creativity := rephraser.Creativity(strings.ToLower(req.Creativity))
	if !creativity.Valid() {
		creativity = rephraser.DefaultCreativity
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("text.length", len(req.Text)),
		attribute.String("rephrase.style", string(style)),
		attribute.String("rephrase.creativity", string(creativity)),
	)

	_, span := otel.Tracer(tracerName).Start(r.Context(), "engine.rephrase")
	result, err := safeCall(func() models.SubstitutionResult {
		return h.substitutor.Rephrase(req.Text, style, creativity)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		h.fail(w, r, "rephrasing", err)
		return
	}
	span.SetAttributes(
		attribute.Int("rephrase.words_changed", result.WordsChanged),
		attribute.Int("rephrase.changes", len(result.ChangesMade)),
	)
	span.End()

	h.engine.Rephrases.WithLabelValues(result.Style, result.Creativity).Inc()
	h.engine.WordsChanged.Observe(float64(result.WordsChanged))
	logging.LogRequest(h.logger, slog.LevelDebug, r, "rephrase_completed",
		slog.String("style", result.Style),
		slog.String("creativity", result.Creativity),
		slog.Int("words_changed", result.WordsChanged),
	)

	h.respondJSON(w, result, http.StatusOK)
}

// decode reads a size-limited JSON body into dst
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ValidationError{
				Status:  http.StatusRequestEntityTooLarge,
				Message: fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
			}
		}
		if errors.Is(err, io.EOF) {
			return &ValidationError{Status: http.StatusBadRequest, Message: "Request body is empty"}
		}
		return &ValidationError{Status: http.StatusBadRequest, Message: "Invalid request body"}
	}
	return nil
}

// validateText enforces the non-empty and minimum length preconditions.
// Length is counted in characters after trimming surrounding whitespace.
func validateText(text string, minChars int, purpose string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{Status: http.StatusBadRequest, Message: "Text must be provided and cannot be empty"}
	}
	if utf8.RuneCountInString(trimmed) < minChars {
		return &ValidationError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Please provide at least %d characters %s", minChars, purpose),
		}
	}
	return nil
}

// reject answers a request that failed validation
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	status := http.StatusBadRequest
	var verr *ValidationError
	if errors.As(err, &verr) {
		status = verr.Status
	}
	h.engine.ValidationErrors.WithLabelValues(endpoint).Inc()
	logging.LogRequest(h.logger, slog.LevelWarn, r, "validation_failed",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	h.respondError(w, err.Error(), status)
}

// fail answers a request whose engine call failed unexpectedly
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	logging.HTTPErrorLogger(h.logger, http.StatusInternalServerError, err, r,
		slog.String("operation", operation))
	h.respondError(w, fmt.Sprintf("An error occurred during %s: %v", operation, err), http.StatusInternalServerError)
}

// safeCall runs an engine call and converts a panic into an error
func safeCall[T any](fn func() T) (result T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return fn(), nil
}

// respondJSON sends a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Debug("failed to encode response", "status", statusCode, "error", err)
	}
}

// respondError sends an error response
func (h *Handler) respondError(w http.ResponseWriter, message string, statusCode int) {
	h.respondJSON(w, map[string]string{
		"error": message,
	}, statusCode)
}
