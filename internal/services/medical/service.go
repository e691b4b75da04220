package medical

import (
	"context"
	"log/slog"
	"time"

	"medibase/internal/services/patients"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service manages per-patient medical sub-records. Each write is an upsert
// keyed by patient id followed by a pointer update on the patient document.
// When the pointer update fails after a fresh insert the inserted record is
// deleted again (best effort) so no orphan stays behind; after an update of
// an existing record the document is left in place since the patient already
// pointed at it.
type Service struct {
	vaccinations VaccinationsRepo
	allergies    AllergiesRepo
	pointers     PatientPointers
	log          *slog.Logger
}

// NewService creates a new medical service
func NewService(vaccinations VaccinationsRepo, allergies AllergiesRepo, pointers PatientPointers, log *slog.Logger) *Service {
	return &Service{
		vaccinations: vaccinations,
		allergies:    allergies,
		pointers:     pointers,
		log:          log,
	}
}

// PutVaccinationSchedule replaces the patient's vaccination schedule.
func (s *Service) PutVaccinationSchedule(ctx context.Context, patientID bson.ObjectID, req PutVaccinationScheduleRequest) (*VaccinationSchedule, error) {
	set := bson.M{
		"patient_id": patientID,
		"vaccines":   req.Vaccines,
		"updated_at": time.Now().UTC(),
		"updated_by": patientID.Hex(),
	}

	record, inserted, err := s.vaccinations.Upsert(ctx, patientID, set)
	if err != nil {
		s.log.Error("failed to upsert vaccination schedule", "error", err, "patient_id", patientID.Hex())
		return nil, ErrServer
	}

	if err := s.pointers.SetMedicalRecord(ctx, patientID, patients.FieldVaccinationSchedule, record.ID); err != nil {
		s.log.Error("failed to link vaccination schedule", "error", err,
			"patient_id", patientID.Hex(), "record_id", record.ID.Hex())
		if inserted {
			if delErr := s.vaccinations.Delete(ctx, record.ID); delErr != nil {
				s.log.Error("failed to remove orphaned vaccination schedule", "error", delErr,
					"record_id", record.ID.Hex())
			}
		}
		return nil, ErrServer
	}

	return record, nil
}

// PutAllergyData replaces the patient's allergy data.
func (s *Service) PutAllergyData(ctx context.Context, patientID bson.ObjectID, req PutAllergyDataRequest) (*AllergyData, error) {
	set := bson.M{
		"patient_id": patientID,
		"allergies":  req.Allergies,
		"updated_at": time.Now().UTC(),
		"updated_by": patientID.Hex(),
	}

	record, inserted, err := s.allergies.Upsert(ctx, patientID, set)
	if err != nil {
		s.log.Error("failed to upsert allergy data", "error", err, "patient_id", patientID.Hex())
		return nil, ErrServer
	}

	if err := s.pointers.SetMedicalRecord(ctx, patientID, patients.FieldAllergyData, record.ID); err != nil {
		s.log.Error("failed to link allergy data", "error", err,
			"patient_id", patientID.Hex(), "record_id", record.ID.Hex())
		if inserted {
			if delErr := s.allergies.Delete(ctx, record.ID); delErr != nil {
				s.log.Error("failed to remove orphaned allergy data", "error", delErr,
					"record_id", record.ID.Hex())
			}
		}
		return nil, ErrServer
	}

	return record, nil
}
