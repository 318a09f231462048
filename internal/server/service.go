// Package server exposes report generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/cashflow/internal/export"
	"github.com/theirongolddev/cashflow/internal/generator"
	"github.com/theirongolddev/cashflow/internal/logger"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration

	// Defaults applied when a request omits a parameter.
	Years         int
	MaxYears      int
	Months        []model.Month
	SelectedYears []int
	Seed          *int64

	Logger zerolog.Logger
}

// ReportResponse is served at /v1/report.
type ReportResponse struct {
	ReportID string `json:"report_id"`
	export.Report
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	UptimeSec    int64     `json:"uptime_sec"`
	Addr         string    `json:"addr"`
	MaxYears     int       `json:"max_years"`
	RequestCount int64     `json:"request_count"`
	ReportCount  int64     `json:"report_count"`
	LastReportID string    `json:"last_report_id,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
}

// Service provides the HTTP API.
type Service struct {
	cfg Config
	log zerolog.Logger
	now func() time.Time

	mu           sync.RWMutex
	startedAt    time.Time
	requestCount int64
	reportCount  int64
	lastReportID string
	lastError    string
}

// New returns a service with defaults filled in.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.MaxYears < 1 {
		cfg.MaxYears = 5
	}
	if cfg.Years < 1 {
		cfg.Years = 1
	}
	if len(cfg.Months) == 0 {
		cfg.Months = pipeline.AllMonths()
	}

	return &Service{
		cfg:       cfg,
		log:       logger.Component(cfg.Logger, "server"),
		now:       time.Now,
		startedAt: time.Now(),
	}
}

// Handler returns the router serving every endpoint.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(recovery(s.log))
	r.Use(requestID(s.log))
	r.Use(requestLogger())
	r.Use(s.countRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/report", s.handleReport)
		r.Get("/months", s.handleMonths)
		r.Get("/status", s.handleStatus)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestCount++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	return Status{
		StartedAt:    s.startedAt,
		UptimeSec:    int64(now.Sub(s.startedAt).Seconds()),
		Addr:         s.cfg.Addr,
		MaxYears:     s.cfg.MaxYears,
		RequestCount: s.requestCount,
		ReportCount:  s.reportCount,
		LastReportID: s.lastReportID,
		LastError:    s.lastError,
	}
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleMonths(w http.ResponseWriter, _ *http.Request) {
	labels := make([]string, len(model.Months))
	for i, m := range model.Months {
		labels[i] = m.String()
	}
	writeJSON(w, http.StatusOK, labels)
}

func (s *Service) handleReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	q, err := s.parseQuery(r)
	if err != nil {
		log.Warn().Err(err).Msg("rejected report query")
		s.recordError(err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := pipeline.BuildReport(q.years, q.months, q.selectedYears, generator.NewSource(q.seed))
	if err != nil {
		log.Error().Err(err).Msg("building report")
		s.recordError(err)
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	id := uuid.NewString()
	resp := ReportResponse{
		ReportID: id,
		Report:   export.NewReport(q.years, q.months, q.selectedYears, rows, s.now()),
	}

	s.mu.Lock()
	s.reportCount++
	s.lastReportID = id
	s.mu.Unlock()

	log.Debug().
		Str(logger.FieldReportID, id).
		Int(logger.FieldYears, q.years).
		Int(logger.FieldRows, len(rows)).
		Msg("report built")

	writeJSON(w, http.StatusOK, resp)
}

type reportQuery struct {
	years         int
	months        []model.Month
	selectedYears []int
	seed          *int64
}

// parseQuery reads years, month, year and seed. month and year accept
// repeated parameters or comma lists; absent values fall back to the
// service defaults.
func (s *Service) parseQuery(r *http.Request) (reportQuery, error) {
	values := r.URL.Query()
	q := reportQuery{
		years:  s.cfg.Years,
		months: s.cfg.Months,
		seed:   s.cfg.Seed,
	}

	if v := values.Get("years"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("%w: years %q is not an integer", model.ErrInvalidArgument, v)
		}
		q.years = n
	}
	if q.years < 1 {
		return q, fmt.Errorf("%w: years must be >= 1, got %d", model.ErrInvalidArgument, q.years)
	}
	if q.years > s.cfg.MaxYears {
		return q, fmt.Errorf("%w: years must be <= %d, got %d", model.ErrInvalidArgument, s.cfg.MaxYears, q.years)
	}

	if raw, ok := values["month"]; ok {
		months, err := model.ParseMonths(raw)
		if err != nil {
			return q, err
		}
		q.months = months
	}

	if raw, ok := values["year"]; ok {
		years, err := parseInts(raw)
		if err != nil {
			return q, err
		}
		q.selectedYears = years
	} else if len(s.cfg.SelectedYears) > 0 {
		q.selectedYears = s.cfg.SelectedYears
	} else {
		q.selectedYears = pipeline.GeneratedYears(q.years)
	}

	if v := values.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return q, fmt.Errorf("%w: seed %q is not an integer", model.ErrInvalidArgument, v)
		}
		q.seed = &n
	}
	return q, nil
}

func parseInts(values []string) ([]int, error) {
	var out []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: year %q is not an integer", model.ErrInvalidArgument, part)
			}
			out = append(out, n)
		}
	}
	return out, nil
}
