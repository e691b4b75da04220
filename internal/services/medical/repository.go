package medical

import (
	"context"

	"medibase/internal/services/patients"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VaccinationsRepo persists vaccination schedules keyed by patient id.
// Upsert reports whether a new document was inserted; Delete is used to
// compensate a fresh insert whose pointer update failed.
type VaccinationsRepo interface {
	Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*VaccinationSchedule, bool, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// AllergiesRepo persists allergy data keyed by patient id.
type AllergiesRepo interface {
	Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*AllergyData, bool, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// PatientPointers is the slice of the patients service this package needs:
// pointing a patient's medical-information entry at a sub-record.
type PatientPointers interface {
	SetMedicalRecord(ctx context.Context, patientID bson.ObjectID, field patients.MedicalField, recordID bson.ObjectID) error
}
