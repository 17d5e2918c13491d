package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubActionLogRepo struct {
	entries   []domain.ActionLog
	appendErr error

	findCalls int
	failTimes int
	findErr   error
}

func (s *stubActionLogRepo) Append(entry *domain.ActionLog) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubActionLogRepo) FindByActorAndActions(ctx context.Context, actorID string, actions []string) ([]domain.ActionLog, error) {
	s.findCalls++
	if s.findCalls <= s.failTimes {
		return nil, s.findErr
	}

	matched := []domain.ActionLog{}
	for _, e := range s.entries {
		if e.ActorID != actorID {
			continue
		}
		for _, a := range actions {
			if e.Action == a {
				matched = append(matched, e)
				break
			}
		}
	}
	// newest first, as the store query orders
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched, nil
}

type stubProducer struct {
	keys   []string
	values [][]byte
	err    error
}

func (s *stubProducer) PublishMessage(key, value []byte) error {
	if s.err != nil {
		return s.err
	}
	s.keys = append(s.keys, string(key))
	s.values = append(s.values, value)
	return nil
}

func fastPolicy(attempts int) retry.Policy {
	return retry.NewPolicy(attempts, time.Millisecond)
}

func TestGetBookingLogsOrdering(t *testing.T) {
	repo := &stubActionLogRepo{}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	svc.Record("u1", "Alice", domain.ActionLogin, "login from alice@example.com")
	svc.Record("u1", "Alice", domain.ActionBookingConfirmation, "booking at Grand Palace")
	svc.Record("u2", "Bob", domain.ActionLogin, "")
	svc.Record("u1", "Alice", "profile_update", "not a booking log action")

	logs, err := svc.GetBookingLogs(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// most recent first: the booking confirmation was recorded after the login
	assert.Equal(t, domain.ActionBookingConfirmation, logs[0].Action)
	assert.Equal(t, domain.ActionLogin, logs[1].Action)
	for _, l := range logs {
		assert.Equal(t, "u1", l.ActorID)
	}
	assert.Equal(t, 1, repo.findCalls)
}

func TestGetBookingLogsEmptyResultIsSuccess(t *testing.T) {
	repo := &stubActionLogRepo{}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	logs, err := svc.GetBookingLogs(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Equal(t, 1, repo.findCalls, "empty result must not trigger a retry")
}

func TestGetBookingLogsRetriesTransientFailure(t *testing.T) {
	repo := &stubActionLogRepo{
		failTimes: 2,
		findErr:   errors.New("connection reset"),
	}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	svc.Record("u1", "Alice", domain.ActionLogin, "")

	logs, err := svc.GetBookingLogs(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, 3, repo.findCalls, "two failures then success")
}

func TestGetBookingLogsExhaustsRetries(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &stubActionLogRepo{
		failTimes: 99,
		findErr:   storeErr,
	}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	_, err := svc.GetBookingLogs(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, 3, repo.findCalls)

	var exhausted *retry.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetBookingLogsRequiresActor(t *testing.T) {
	repo := &stubActionLogRepo{}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	_, err := svc.GetBookingLogs(context.Background(), "")
	assert.ErrorIs(t, err, ErrActorRequired)
	assert.Zero(t, repo.findCalls)
}

func TestRecordPublishesToAuditStream(t *testing.T) {
	repo := &stubActionLogRepo{}
	producer := &stubProducer{}
	svc := NewActionLogService(repo, producer, fastPolicy(3))

	svc.Record("u1", "Alice", domain.ActionLogin, "login from alice@example.com")

	require.Len(t, repo.entries, 1)
	require.Len(t, producer.keys, 1)
	assert.Equal(t, domain.ActionLogin, producer.keys[0])
	assert.Contains(t, string(producer.values[0]), `"actor_id":"u1"`)
}

func TestRecordSurvivesAppendFailure(t *testing.T) {
	repo := &stubActionLogRepo{appendErr: errors.New("disk full")}
	producer := &stubProducer{}
	svc := NewActionLogService(repo, producer, fastPolicy(3))

	// must not panic or publish a phantom event
	svc.Record("u1", "Alice", domain.ActionLogin, "")
	assert.Empty(t, producer.keys)
}

func TestHandleMessageIngestsExternalEvent(t *testing.T) {
	repo := &stubActionLogRepo{}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	msg := `{"actor_id":"u9","actor_name":"Front Desk","action":"booking_confirmation","detail":"walk-in"}`
	require.NoError(t, svc.HandleMessage(msg))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "u9", repo.entries[0].ActorID)
	assert.Equal(t, domain.ActionBookingConfirmation, repo.entries[0].Action)
}

func TestHandleMessageRejectsMalformedEvent(t *testing.T) {
	repo := &stubActionLogRepo{}
	svc := NewActionLogService(repo, nil, fastPolicy(3))

	assert.Error(t, svc.HandleMessage("not json"))
	assert.Error(t, svc.HandleMessage(`{"action":"login"}`), "missing actor id")
	assert.Empty(t, repo.entries)
}
