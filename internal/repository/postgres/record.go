package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetco-health/vetco-api/internal/model"
)

type recordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *recordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	query := `
		INSERT INTO records (
			id, kind, vet_id, owner_id, patient_id, pet_name, animal_type,
			diagnosis, treatment, medications, visit_date, follow_up_date,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Kind,
		record.VetID,
		record.OwnerID,
		record.PatientID,
		record.PetName,
		record.AnimalType,
		record.Diagnosis,
		record.Treatment,
		record.Medications,
		record.VisitDate,
		record.FollowUpDate,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *recordRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, kind model.RecordKind) ([]*model.Record, error) {
	query := `
		SELECT id, kind, vet_id, owner_id, patient_id, pet_name, animal_type,
			   diagnosis, treatment, medications, visit_date, follow_up_date,
			   created_at, updated_at
		FROM records
		WHERE owner_id = $1 AND kind = $2
		ORDER BY created_at DESC
	`
	var records []*model.Record
	err := r.db.SelectContext(ctx, &records, query, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (r *recordRepository) ListForVet(ctx context.Context, vetID uuid.UUID, kind model.RecordKind) ([]*model.Record, error) {
	query := `
		SELECT id, kind, vet_id, owner_id, patient_id, pet_name, animal_type,
			   diagnosis, treatment, medications, visit_date, follow_up_date,
			   created_at, updated_at
		FROM records
		WHERE vet_id = $1 AND kind = $2
		ORDER BY created_at DESC
	`
	var records []*model.Record
	err := r.db.SelectContext(ctx, &records, query, vetID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list vet records: %w", err)
	}
	return records, nil
}

// Delete removes a record by id. It deliberately does not inspect
// RowsAffected: deleting an absent id succeeds, matching the API's
// long-standing blind-delete behavior.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM records
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
