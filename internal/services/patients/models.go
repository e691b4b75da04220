package patients

import (
	"time"

	"medibase/internal/services/auth"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MedicalField names a slot in the patient's medical-information map. The
// set is fixed; handlers never pass arbitrary strings through.
type MedicalField string

const (
	FieldVaccinationSchedule MedicalField = "vaccination_schedule"
	FieldAllergyData         MedicalField = "allergy_data"
)

// Valid reports whether f is a known medical-information field.
func (f MedicalField) Valid() bool {
	switch f {
	case FieldVaccinationSchedule, FieldAllergyData:
		return true
	}
	return false
}

// Patient is a user with the patient role plus demographic details and the
// medical-information pointer map. Each map entry references the patient's
// single sub-record document for that field.
type Patient struct {
	auth.User          `bson:",inline"`
	DateOfBirth        string                         `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty" example:"1990-04-12"`
	Phone              string                         `bson:"phone,omitempty" json:"phone,omitempty" example:"+34600111222"`
	Address            string                         `bson:"address,omitempty" json:"address,omitempty"`
	MedicalInformation map[MedicalField]bson.ObjectID `bson:"medical_information,omitempty" json:"medical_information,omitempty"`
}

// CreatePatientRequest represents a patient registration request
type CreatePatientRequest struct {
	Email       string `json:"email" validate:"required,email" example:"pat@example.com"`
	Password    string `json:"password" validate:"required,password" example:"Password123"`
	FirstName   string `json:"first_name" validate:"required" example:"Jon"`
	LastName    string `json:"last_name" validate:"required" example:"Snow"`
	DateOfBirth string `json:"date_of_birth,omitempty" example:"1990-04-12"`
	Phone       string `json:"phone,omitempty" example:"+34600111222"`
	Address     string `json:"address,omitempty"`
}

// PatientResponse is the public view of a patient.
type PatientResponse struct {
	ID                 string            `json:"id" example:"683cdb8aa96ad71e8e075bd1"`
	Email              string            `json:"email" example:"pat@example.com"`
	FirstName          string            `json:"first_name" example:"Jon"`
	LastName           string            `json:"last_name" example:"Snow"`
	DateOfBirth        string            `json:"date_of_birth,omitempty" example:"1990-04-12"`
	Phone              string            `json:"phone,omitempty" example:"+34600111222"`
	Address            string            `json:"address,omitempty"`
	MedicalInformation map[string]string `json:"medical_information,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

func toResponse(p *Patient) *PatientResponse {
	resp := &PatientResponse{
		ID:          p.ID.Hex(),
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Phone:       p.Phone,
		Address:     p.Address,
		CreatedAt:   p.CreatedAt,
	}
	if len(p.MedicalInformation) > 0 {
		resp.MedicalInformation = make(map[string]string, len(p.MedicalInformation))
		for field, id := range p.MedicalInformation {
			resp.MedicalInformation[string(field)] = id.Hex()
		}
	}
	return resp
}
