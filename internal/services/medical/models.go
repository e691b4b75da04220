package medical

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VaccineEntry is one administered or scheduled vaccine.
type VaccineEntry struct {
	Name string `bson:"name" json:"name" validate:"required" example:"MMR"`
	Dose int    `bson:"dose" json:"dose" validate:"required,min=1" example:"2"`
	Date string `bson:"date,omitempty" json:"date,omitempty" example:"2024-10-01"`
}

// VaccinationSchedule is a patient's single vaccination sub-record. Exactly
// one document per patient exists; writes replace the whole field set.
type VaccinationSchedule struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID bson.ObjectID  `bson:"patient_id" json:"patient_id"`
	Vaccines  []VaccineEntry `bson:"vaccines" json:"vaccines"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
	UpdatedBy string         `bson:"updated_by,omitempty" json:"-"`
}

// AllergyEntry is one known allergy.
type AllergyEntry struct {
	Allergen string `bson:"allergen" json:"allergen" validate:"required" example:"penicillin"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty" example:"high"`
	Reaction string `bson:"reaction,omitempty" json:"reaction,omitempty" example:"anaphylaxis"`
}

// AllergyData is a patient's single allergy sub-record.
type AllergyData struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	PatientID bson.ObjectID  `bson:"patient_id" json:"patient_id"`
	Allergies []AllergyEntry `bson:"allergies" json:"allergies"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
	UpdatedBy string         `bson:"updated_by,omitempty" json:"-"`
}

// PutVaccinationScheduleRequest replaces the caller's vaccination schedule.
type PutVaccinationScheduleRequest struct {
	Vaccines []VaccineEntry `json:"vaccines" validate:"required,min=1,dive"`
}

// PutAllergyDataRequest replaces the caller's allergy data.
type PutAllergyDataRequest struct {
	Allergies []AllergyEntry `json:"allergies" validate:"required,min=1,dive"`
}
