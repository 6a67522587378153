package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetco-health/vetco-api/internal/model"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) *appointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, title, date, time, client_name, user_id, vet_id,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.Title,
		appointment.Date,
		appointment.Time,
		appointment.ClientName,
		appointment.UserID,
		appointment.VetID,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) ListForOwner(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT id, title, date, time, client_name, user_id, vet_id,
			   status, created_at, updated_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY date ASC, time ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT id, title, date, time, client_name, user_id, vet_id,
			   status, created_at, updated_at
		FROM appointments
		WHERE vet_id = $1
		ORDER BY date ASC, time ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, vetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vet appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE user_id = $1 OR vet_id = $1
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
