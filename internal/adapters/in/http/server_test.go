package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "shipconfirm/internal/adapters/in/http"
	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRunTrigger struct {
	mock.Mock
}

func (m *MockRunTrigger) TriggerShipmentConfirmation(ctx context.Context) (kernel.RunID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.RunID), args.Error(1)
}

func newEcho(trigger httpin.RunTrigger) *echo.Echo {
	e := echo.New()
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("shipconfirm_runs_total 0\n"))
	})
	httpin.NewServer(trigger, metrics).RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestServer_Health(t *testing.T) {
	w := serve(newEcho(&MockRunTrigger{}), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Healthy", w.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	w := serve(newEcho(&MockRunTrigger{}), http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shipconfirm_runs_total")
}

func TestServer_TriggerRun(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		runID := kernel.NewRunID()
		trigger := &MockRunTrigger{}
		trigger.On("TriggerShipmentConfirmation", mock.Anything).Return(runID, nil).Once()

		w := serve(newEcho(trigger), http.MethodPost, "/runs")

		require.Equal(t, http.StatusAccepted, w.Code)
		var body httpin.RunAccepted
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, runID.String(), body.RunID)
		trigger.AssertExpectations(t)
	})

	t.Run("conflict while running", func(t *testing.T) {
		trigger := &MockRunTrigger{}
		trigger.On("TriggerShipmentConfirmation", mock.Anything).Return(kernel.RunID{}, jobs.ErrRunInProgress)

		w := serve(newEcho(trigger), http.MethodPost, "/runs")

		require.Equal(t, http.StatusConflict, w.Code)
		var body httpin.Error
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, body.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		trigger := &MockRunTrigger{}
		trigger.On("TriggerShipmentConfirmation", mock.Anything).Return(kernel.RunID{}, errors.New("boom"))

		w := serve(newEcho(trigger), http.MethodPost, "/runs")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := serve(newEcho(&MockRunTrigger{}), http.MethodGet, "/runs")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
