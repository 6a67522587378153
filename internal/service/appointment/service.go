package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/email"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
	"github.com/vetco-health/vetco-api/internal/service/event"
)

type Service struct {
	repo     repository.AppointmentRepository
	events   event.Emitter
	emailSvc email.Service
}

func NewService(repo repository.AppointmentRepository, events event.Emitter, emailSvc email.Service) *Service {
	return &Service{
		repo:     repo,
		events:   events,
		emailSvc: emailSvc,
	}
}

// Create books an appointment for owner. Status always starts Scheduled.
func (s *Service) Create(ctx context.Context, owner *model.User, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		Title:      req.Title,
		Date:       req.Date,
		Time:       req.Time,
		ClientName: req.ClientName,
		UserID:     owner.ID,
		VetID:      req.VetID,
		Status:     model.AppointmentStatusScheduled,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.events.Emit(ctx, event.TypeAppointmentCreated, appointment); err != nil {
		log.Warn().Err(err).Str("appointment_id", appointment.ID.String()).Msg("failed to emit appointment event")
	}

	if err := s.emailSvc.SendAppointmentBooked(owner.Email, appointment); err != nil {
		log.Warn().Err(err).Str("email", owner.Email).Msg("failed to send booking email")
	}

	return appointment, nil
}

func (s *Service) ListForOwner(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	return s.repo.ListForOwner(ctx, userID)
}

func (s *Service) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Appointment, error) {
	return s.repo.ListForVet(ctx, vetID)
}
