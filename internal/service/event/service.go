package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
)

// Event types emitted on entity creation.
const (
	TypeAppointmentCreated = "appointment.created"
	TypeMessageCreated     = "message.created"
	TypeRecordCreated      = "record.created"
)

// Emitter records domain events for asynchronous dispatch.
type Emitter interface {
	Emit(ctx context.Context, eventType string, payload interface{}) error
}

type Service struct {
	outboxRepo repository.OutboxRepository
}

func NewService(outboxRepo repository.OutboxRepository) *Service {
	return &Service{outboxRepo: outboxRepo}
}

// Emit writes the event to the outbox; the processor publishes it later.
func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return s.outboxRepo.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   data,
	})
}
