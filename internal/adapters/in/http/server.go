package http

import (
	"context"
	"errors"
	"net/http"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/jobs"

	"github.com/labstack/echo/v4"
)

// RunTrigger starts an out-of-schedule shipment confirmation run.
type RunTrigger interface {
	TriggerShipmentConfirmation(ctx context.Context) (kernel.RunID, error)
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunAccepted is the body of an accepted manual run.
type RunAccepted struct {
	RunID string `json:"run_id"`
}

// Server exposes the operational endpoints of the serve mode.
type Server struct {
	trigger RunTrigger
	metrics http.Handler
}

// NewServer creates a server. metrics serves the Prometheus exposition.
func NewServer(trigger RunTrigger, metrics http.Handler) *Server {
	return &Server{
		trigger: trigger,
		metrics: metrics,
	}
}

// RegisterRoutes mounts the endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics))
	e.POST("/runs", s.TriggerRun)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// TriggerRun handles POST /runs - starts a shipment confirmation run.
func (s *Server) TriggerRun(ctx echo.Context) error {
	runID, err := s.trigger.TriggerShipmentConfirmation(ctx.Request().Context())
	if errors.Is(err, jobs.ErrRunInProgress) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "A shipment confirmation run is already in progress",
		})
	}
	if err != nil {
		ctx.Logger().Errorf("trigger shipment confirmation: %v", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to start shipment confirmation run",
		})
	}

	return ctx.JSON(http.StatusAccepted, RunAccepted{RunID: runID.String()})
}
