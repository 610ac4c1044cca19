// Package server exposes the reflection pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/transform"
	"github.com/habitloop/reflector/pkg/utils/logging"
)

// Summaries is the slice of the summary usecase the server needs.
type Summaries interface {
	MoodRecap(ctx context.Context, export *transform.Export) (*model.ReflectionRecord, error)
	JournalReflection(ctx context.Context, entries []model.JournalEntry, startDate, endDate string) (string, error)
	Store(ctx context.Context, record *model.ReflectionRecord) (*model.ReflectionRecord, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Addr string
}

// Server provides the HTTP endpoints of the reflection service.
type Server struct {
	echo      *echo.Echo
	summaries Summaries
	logger    *slog.Logger
	config    *Config
}

// New creates a new HTTP server.
func New(summaries Summaries, logger *slog.Logger, cfg *Config) (*Server, error) {
	if summaries == nil {
		return nil, goerr.New("summaries usecase is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg == nil {
		cfg = &Config{Addr: "localhost:5050"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{
		echo:      e,
		summaries: summaries,
		logger:    logger,
		config:    cfg,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/weekly-summary", s.handleWeeklySummary)
	v1.POST("/journal", s.handleJournal)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// WeeklySummaryResponse is the response body for POST /api/v1/weekly-summary.
type WeeklySummaryResponse struct {
	Message     string                  `json:"message"`
	MoodSummary *model.ReflectionRecord `json:"mood_summary"`
	Stored      bool                    `json:"stored"`
}

// JournalRequest is the request body for POST /api/v1/journal.
type JournalRequest struct {
	JournalEntries []model.JournalEntry `json:"journalEntries"`
	StartDate      string               `json:"startDate"`
	EndDate        string               `json:"endDate"`
}

// JournalResponse is the response body for POST /api/v1/journal.
type JournalResponse struct {
	Message        string `json:"message"`
	GeneratedEntry string `json:"generated_entry"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleWeeklySummary normalizes a raw export from the request body,
// generates the mood recap and upserts it. A storage failure does not
// fail the request; the response carries stored=false instead.
func (s *Server) handleWeeklySummary(c echo.Context) error {
	var export transform.Export
	if err := c.Bind(&export); err != nil {
		s.logger.Warn("invalid weekly summary request", logging.ErrAttr(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := logging.With(c.Request().Context(),
		s.logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))

	record, err := s.summaries.MoodRecap(ctx, &export)
	if err != nil {
		return s.httpError(err)
	}

	stored := true
	if _, err := s.summaries.Store(ctx, record); err != nil {
		// already logged by the usecase
		stored = false
	}

	return c.JSON(http.StatusOK, WeeklySummaryResponse{
		Message:     "Data processed successfully",
		MoodSummary: record,
		Stored:      stored,
	})
}

func (s *Server) handleJournal(c echo.Context) error {
	var req JournalRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid journal request", logging.ErrAttr(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := logging.With(c.Request().Context(),
		s.logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))

	text, err := s.summaries.JournalReflection(ctx, req.JournalEntries, req.StartDate, req.EndDate)
	if err != nil {
		return s.httpError(err)
	}

	return c.JSON(http.StatusOK, JournalResponse{
		Message:        "Journal entry generated successfully",
		GeneratedEntry: text,
	})
}

// httpError maps the error taxonomy onto HTTP statuses: payload errors
// are the client's fault, collaborator errors are upstream failures.
func (s *Server) httpError(err error) *echo.HTTPError {
	s.logger.Error("request failed", logging.ErrAttr(err))
	switch {
	case errors.Is(err, model.ErrParse),
		errors.Is(err, model.ErrMissingField),
		errors.Is(err, model.ErrShapeMismatch),
		errors.Is(err, model.ErrMissingKey):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrProvider), errors.Is(err, model.ErrStorage):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting http server", "addr", s.config.Addr)
	if err := s.echo.Start(s.config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return goerr.Wrap(err, "http server stopped", goerr.V("addr", s.config.Addr))
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
