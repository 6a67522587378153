package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetco-health/vetco-api/internal/model"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) *patientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, name, species, breed, age, owner_id, vet_id,
			last_visit, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Species,
		patient.Breed,
		patient.Age,
		patient.OwnerID,
		patient.VetID,
		patient.LastVisit,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Patient, error) {
	query := `
		SELECT id, name, species, breed, age, owner_id, vet_id,
			   last_visit, created_at, updated_at
		FROM patients
		WHERE vet_id = $1
		ORDER BY created_at DESC
	`
	var patients []*model.Patient
	err := r.db.SelectContext(ctx, &patients, query, vetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
