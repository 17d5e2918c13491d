package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"gorm.io/gorm"
)

// ActionLogRepository is append-only. There is no update or delete path;
// retention is handled outside this service.
type ActionLogRepository interface {
	Append(entry *domain.ActionLog) error
	FindByActorAndActions(ctx context.Context, actorID string, actions []string) ([]domain.ActionLog, error)
}

type actionLogRepository struct {
	db *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) ActionLogRepository {
	return &actionLogRepository{db: db}
}

func (r *actionLogRepository) Append(entry *domain.ActionLog) error {
	if entry == nil {
		return errors.New("nil action log entry")
	}
	if entry.ActorID == "" || entry.Action == "" {
		return errors.New("actor id and action are required")
	}

	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("append action log error: %v", err)
		return fmt.Errorf("append action log: %w", err)
	}
	return nil
}

// FindByActorAndActions returns the actor's matching entries newest first.
// An empty result is not an error.
func (r *actionLogRepository) FindByActorAndActions(ctx context.Context, actorID string, actions []string) ([]domain.ActionLog, error) {
	logs := []domain.ActionLog{}

	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND action IN ?", actorID, actions).
		Order("occurred_at DESC").
		Find(&logs).Error
	if err != nil {
		log.Printf("find action logs error: %v", err)
		return nil, fmt.Errorf("find action logs: %w", err)
	}

	return logs, nil
}
