package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vetco-health/vetco-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListForOwner(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error)
	ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Appointment, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Message, error)
	ListRecent(ctx context.Context, userID uuid.UUID) ([]*model.Message, error)
	ListConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*model.Message, error)
	MarkConversationRead(ctx context.Context, recipientID, senderID uuid.UUID) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Patient, error)
}

type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	ListForOwner(ctx context.Context, ownerID uuid.UUID, kind model.RecordKind) ([]*model.Record, error)
	ListForVet(ctx context.Context, vetID uuid.UUID, kind model.RecordKind) ([]*model.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context) ([]*model.Doctor, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}
