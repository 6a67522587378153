package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, vetID uuid.UUID, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Age:       req.Age,
		OwnerID:   req.OwnerID,
		VetID:     vetID,
		LastVisit: req.LastVisit,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Patient, error) {
	return s.repo.ListForVet(ctx, vetID)
}
