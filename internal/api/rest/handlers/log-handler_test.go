package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/pkg/retry"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLogService struct {
	logs []domain.ActionLog
	err  error
}

func (s *stubLogService) Record(actorID, actorName, action, detail string) {}

func (s *stubLogService) GetBookingLogs(ctx context.Context, actorID string) ([]domain.ActionLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.logs, nil
}

func (s *stubLogService) HandleMessage(message string) error { return nil }

func newLogApp(svc *stubLogService) *fiber.App {
	app := fiber.New()
	NewLogHandler(svc).SetupRoutes(app)
	return app
}

func TestGetBookingLogsReturnsOrderedEvents(t *testing.T) {
	now := time.Now()
	svc := &stubLogService{
		logs: []domain.ActionLog{
			{ActorID: "u1", Action: domain.ActionBookingConfirmation, OccurredAt: now},
			{ActorID: "u1", Action: domain.ActionLogin, OccurredAt: now.Add(-time.Hour)},
		},
	}
	app := newLogApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/logs/u1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var logs []domain.ActionLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.Len(t, logs, 2)
	assert.Equal(t, domain.ActionBookingConfirmation, logs[0].Action)
	assert.Equal(t, domain.ActionLogin, logs[1].Action)
}

func TestGetBookingLogsExhaustionReturns500(t *testing.T) {
	svc := &stubLogService{
		err: &retry.ExhaustedError{Attempts: 3, Err: errors.New("connection reset")},
	}
	app := newLogApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/logs/u1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch logs", body["message"])
	assert.Contains(t, body["error"], "3 attempts")
}
