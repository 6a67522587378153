package doctor

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
)

const (
	directoryCacheKey = "doctor:directory"
	directoryCacheTTL = time.Minute
)

// Service serves the public vet directory. Listings go through a short
// TTL cache since the directory is read far more than it is written.
type Service struct {
	repo  repository.DoctorRepository
	cache *gocache.Cache
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(directoryCacheTTL, 5*time.Minute),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		Name:         req.Name,
		Expertise:    req.Expertise,
		Location:     req.Location,
		Contact:      req.Contact,
		Availability: req.Availability,
		ProfilePic:   req.ProfilePic,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	s.cache.Delete(directoryCacheKey)
	return doctor, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(directoryCacheKey); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(directoryCacheKey, doctors, gocache.DefaultExpiration)
	return doctors, nil
}
