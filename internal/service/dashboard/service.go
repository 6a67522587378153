package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
)

type Service struct {
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.RecordRepository
}

func NewService(appointmentRepo repository.AppointmentRepository, recordRepo repository.RecordRepository) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
	}
}

func (s *Service) Stats(ctx context.Context, user *model.User) (*model.DashboardStats, error) {
	total, err := s.appointmentRepo.CountForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return &model.DashboardStats{TotalAppointments: total}, nil
}

// RecentActivity merges the user's appointments and treatment records into
// a single feed, newest first. An empty feed is the caller's 404 case.
func (s *Service) RecentActivity(ctx context.Context, user *model.User) ([]*model.ActivityItem, error) {
	var items []*model.ActivityItem

	appointments, err := s.listAppointments(ctx, user)
	if err != nil {
		return nil, err
	}
	for _, a := range appointments {
		items = append(items, &model.ActivityItem{
			Type:        "appointment",
			Description: fmt.Sprintf("Appointment %q scheduled for %s at %s", a.Title, a.Date, a.Time),
			Timestamp:   a.CreatedAt,
		})
	}

	var records []*model.Record
	if user.UserType == model.UserTypeVet {
		records, err = s.recordRepo.ListForVet(ctx, user.ID, model.RecordKindTreatment)
	} else {
		records, err = s.recordRepo.ListForOwner(ctx, user.ID, model.RecordKindTreatment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	for _, r := range records {
		items = append(items, &model.ActivityItem{
			Type:        "record",
			Description: fmt.Sprintf("Treatment record for %s: %s", r.PetName, r.Diagnosis),
			Timestamp:   r.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	return items, nil
}

func (s *Service) listAppointments(ctx context.Context, user *model.User) ([]*model.Appointment, error) {
	if user.UserType == model.UserTypeVet {
		return s.appointmentRepo.ListForVet(ctx, user.ID)
	}
	return s.appointmentRepo.ListForOwner(ctx, user.ID)
}
