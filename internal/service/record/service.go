package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
	"github.com/vetco-health/vetco-api/internal/service/event"
)

type Service struct {
	repo   repository.RecordRepository
	events event.Emitter
}

func NewService(repo repository.RecordRepository, events event.Emitter) *Service {
	return &Service{repo: repo, events: events}
}

// CreateTreatment stores a farmer-facing treatment record. When the caller
// is a vet the record is authored under their id; a farmer caller owns the
// record and names the vet in the request.
func (s *Service) CreateTreatment(ctx context.Context, caller *model.User, req *model.CreateRecordRequest) (*model.Record, error) {
	record := &model.Record{
		Kind:       model.RecordKindTreatment,
		PetName:    req.PetName,
		AnimalType: req.AnimalType,
		Diagnosis:  req.Diagnosis,
		Treatment:  req.Treatment,
		VisitDate:  req.VisitDate,
	}

	if caller.UserType == model.UserTypeVet {
		record.VetID = caller.ID
		record.OwnerID = req.OwnerID
	} else {
		callerID := caller.ID
		record.OwnerID = &callerID
		if req.VetID != nil {
			record.VetID = *req.VetID
		}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.emit(ctx, record)
	return record, nil
}

// CreateClinical stores a vet-authored clinical record for a registered
// patient.
func (s *Service) CreateClinical(ctx context.Context, vetID uuid.UUID, req *model.CreateClinicalRecordRequest) (*model.Record, error) {
	patientID := req.PatientID
	record := &model.Record{
		Kind:         model.RecordKindClinical,
		VetID:        vetID,
		PatientID:    &patientID,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Medications:  req.Medications,
		FollowUpDate: req.FollowUpDate,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create clinical record: %w", err)
	}

	s.emit(ctx, record)
	return record, nil
}

// ListForCaller scopes treatment records to the authenticated user: vets
// see records they authored, farmers see records they own.
func (s *Service) ListForCaller(ctx context.Context, caller *model.User) ([]*model.Record, error) {
	if caller.UserType == model.UserTypeVet {
		return s.repo.ListForVet(ctx, caller.ID, model.RecordKindTreatment)
	}
	return s.repo.ListForOwner(ctx, caller.ID, model.RecordKindTreatment)
}

func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Record, error) {
	return s.repo.ListForOwner(ctx, ownerID, model.RecordKindTreatment)
}

func (s *Service) ListClinicalForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Record, error) {
	return s.repo.ListForVet(ctx, vetID, model.RecordKindClinical)
}

// Delete removes a record by id. There is no existence or ownership check;
// see the repository for why.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) emit(ctx context.Context, record *model.Record) {
	if err := s.events.Emit(ctx, event.TypeRecordCreated, record); err != nil {
		log.Warn().Err(err).Str("record_id", record.ID.String()).Msg("failed to emit record event")
	}
}
