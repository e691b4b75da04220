package patients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medibase/internal/config"
	"medibase/internal/services/auth"
	"medibase/internal/utils/crypto"
	"medibase/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service manages patient accounts and their medical-information pointers.
type Service struct {
	repo   PatientsRepo
	config config.Config
	log    *slog.Logger
}

// NewService creates a new patients service
func NewService(repo PatientsRepo, cfg config.Config, log *slog.Logger) *Service {
	return &Service{repo: repo, config: cfg, log: log}
}

// Create registers a new patient. The email must be free.
func (s *Service) Create(ctx context.Context, req CreatePatientRequest, createdBy string) (*PatientResponse, error) {
	email := strings.ToLower(sanitize.Clean(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to check patient conflicts", "error", err)
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
	patient := &Patient{
		User: auth.User{
			Email:        email,
			PasswordHash: hash,
			Role:         auth.RolePatient,
			FirstName:    sanitize.Clean(req.FirstName),
			LastName:     sanitize.Clean(req.LastName),
			CreatedAt:    now,
			UpdatedAt:    now,
			UpdatedBy:    createdBy,
		},
		DateOfBirth: sanitize.Clean(req.DateOfBirth),
		Phone:       sanitize.Clean(req.Phone),
		Address:     sanitize.Clean(req.Address),
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.log.Error("failed to create patient", "error", err)
		return nil, ErrServer
	}

	return toResponse(created), nil
}

// GetByID loads a patient or fails with ErrPatientNotFound.
func (s *Service) GetByID(ctx context.Context, id bson.ObjectID) (*PatientResponse, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load patient", "error", err, "patient_id", id.Hex())
		return nil, ErrServer
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return toResponse(patient), nil
}

// SetMedicalRecord points the patient's medical-information entry for the
// given field at recordID and re-stamps the audit fields. The medical
// service calls this after every sub-record upsert.
func (s *Service) SetMedicalRecord(ctx context.Context, patientID bson.ObjectID, field MedicalField, recordID bson.ObjectID) error {
	if !field.Valid() {
		return fmt.Errorf("unknown medical field %q", field)
	}

	patch := bson.M{
		fmt.Sprintf("medical_information.%s", field): recordID,
		"updated_at": time.Now().UTC(),
		"updated_by": patientID.Hex(),
	}
	updated, err := s.repo.Update(ctx, patientID, patch)
	if err != nil {
		s.log.Error("failed to set medical record pointer", "error", err,
			"patient_id", patientID.Hex(), "field", string(field))
		return ErrServer
	}
	if updated == nil {
		return ErrPatientNotFound
	}
	return nil
}
