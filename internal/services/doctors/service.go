package doctors

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"medibase/internal/config"
	"medibase/internal/services/auth"
	"medibase/internal/utils/crypto"
	"medibase/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service manages doctor accounts.
type Service struct {
	repo   DoctorsRepo
	config config.Config
	log    *slog.Logger
}

// NewService creates a new doctors service
func NewService(repo DoctorsRepo, cfg config.Config, log *slog.Logger) *Service {
	return &Service{repo: repo, config: cfg, log: log}
}

// Create registers a new doctor. Both the email and the license number must
// be free; any match on either fails with ErrUserAlreadyExists and nothing
// is inserted.
func (s *Service) Create(ctx context.Context, req CreateDoctorRequest, createdBy string) (*DoctorResponse, error) {
	email := strings.ToLower(sanitize.Clean(req.Email))
	license := sanitize.Clean(req.LicenseNumber)

	existing, err := s.repo.FindByEmailOrLicense(ctx, email, license)
	if err != nil {
		s.log.Error("failed to check doctor conflicts", "error", err)
		return nil, ErrServer
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := crypto.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, ErrServer
	}

	now := time.Now().UTC()
	doctor := &Doctor{
		User: auth.User{
			Email:        email,
			PasswordHash: hash,
			Role:         auth.RoleDoctor,
			FirstName:    sanitize.Clean(req.FirstName),
			LastName:     sanitize.Clean(req.LastName),
			CreatedAt:    now,
			UpdatedAt:    now,
			UpdatedBy:    createdBy,
		},
		LicenseNumber: license,
		Specialty:     sanitize.Clean(req.Specialty),
		Phone:         sanitize.Clean(req.Phone),
	}

	created, err := s.repo.Create(ctx, doctor)
	if err != nil {
		s.log.Error("failed to create doctor", "error", err)
		return nil, ErrServer
	}

	return toResponse(created), nil
}

// GetByID loads a doctor or fails with ErrDoctorNotFound.
func (s *Service) GetByID(ctx context.Context, id bson.ObjectID) (*DoctorResponse, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load doctor", "error", err, "doctor_id", id.Hex())
		return nil, ErrServer
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return toResponse(doctor), nil
}
