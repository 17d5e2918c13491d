package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/internal/interfaces"
	"github.com/StayNest/booking_service/internal/repository"
	"github.com/StayNest/booking_service/pkg/retry"
)

var ErrActorRequired = errors.New("actor id is required")

type ActionLogService interface {
	// Record appends one action entry. Failures are logged, never surfaced:
	// an audit write must not fail the operation that triggered it.
	Record(actorID, actorName, action, detail string)

	// GetBookingLogs returns the actor's login and booking_confirmation
	// entries newest first, retrying transient store failures.
	GetBookingLogs(ctx context.Context, actorID string) ([]domain.ActionLog, error)

	// HandleMessage ingests an action event published by another service.
	HandleMessage(message string) error
}

type actionLogService struct {
	repo     repository.ActionLogRepository
	producer interfaces.ProducerHandler
	policy   retry.Policy
}

func NewActionLogService(repo repository.ActionLogRepository, producer interfaces.ProducerHandler, policy retry.Policy) ActionLogService {
	if policy.OnAttempt == nil {
		policy.OnAttempt = func(attempt int, err error) {
			if err != nil {
				log.Printf("fetch booking logs attempt %d failed: %v", attempt, err)
				return
			}
			log.Printf("fetch booking logs attempt %d succeeded", attempt)
		}
	}
	return &actionLogService{
		repo:     repo,
		producer: producer,
		policy:   policy,
	}
}

func (s *actionLogService) Record(actorID, actorName, action, detail string) {
	entry := &domain.ActionLog{
		ActorID:   actorID,
		ActorName: actorName,
		Action:    action,
		Detail:    detail,
	}

	if err := s.repo.Append(entry); err != nil {
		log.Printf("record action %q for actor %q failed: %v", action, actorID, err)
		return
	}

	// fan out to the audit stream for downstream consumers
	if s.producer != nil {
		payload, err := json.Marshal(entry)
		if err != nil {
			return
		}
		if err := s.producer.PublishMessage([]byte(action), payload); err != nil {
			log.Printf("publish action %q failed: %v", action, err)
		}
	}
}

func (s *actionLogService) GetBookingLogs(ctx context.Context, actorID string) ([]domain.ActionLog, error) {
	if actorID == "" {
		return nil, ErrActorRequired
	}

	var logs []domain.ActionLog
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		found, err := s.repo.FindByActorAndActions(ctx, actorID, domain.BookingLogActions)
		if err != nil {
			return err
		}
		// an empty result is a valid answer, not a reason to retry
		logs = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// actionEvent is the wire form of entries arriving on the audit topic.
type actionEvent struct {
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name,omitempty"`
	Action    string `json:"action"`
	Detail    string `json:"detail,omitempty"`
}

func (s *actionLogService) HandleMessage(message string) error {
	var ev actionEvent
	if err := json.Unmarshal([]byte(message), &ev); err != nil {
		return fmt.Errorf("malformed action event: %w", err)
	}
	if ev.ActorID == "" || ev.Action == "" {
		return errors.New("action event missing actor id or action")
	}

	return s.repo.Append(&domain.ActionLog{
		ActorID:   ev.ActorID,
		ActorName: ev.ActorName,
		Action:    ev.Action,
		Detail:    ev.Detail,
	})
}
