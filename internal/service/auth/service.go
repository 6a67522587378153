package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/email"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
	"github.com/vetco-health/vetco-api/pkg/auth"
	"github.com/vetco-health/vetco-api/pkg/security"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLicenseRequired    = errors.New("license number is required for vets")
)

const bcryptCost = 12

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
	emailSvc email.Service
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, emailSvc email.Service) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   security.NewBcryptHasher(bcryptCost),
		emailSvc: emailSvc,
	}
}

// Signup creates a new account. The email must be unused; vets must carry
// a license number.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	existing, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	if req.UserType == model.UserTypeVet && req.LicenseNumber == "" {
		return nil, ErrLicenseRequired
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     req.UserType,
		Location:     req.Location,
	}
	if req.UserType == model.UserTypeVet {
		license := req.LicenseNumber
		user.LicenseNumber = &license
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.emailSvc.SendWelcome(user.Email, user.FullName); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
	}

	return user, nil
}

// Login checks credentials and issues a 1-hour access token.
func (s *Service) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		Token:    token,
		UserType: user.UserType,
		User:     user,
	}, nil
}

// GetUser resolves a user by id; the auth gate uses it to attach the
// current user to the request.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.Get(ctx, id)
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *Service) ValidateToken(token string) (*auth.Claims, error) {
	return s.jwtSvc.ValidateToken(token)
}
