package doctors

import (
	"medibase/internal/services/auth"
)

// Doctor is a user with the doctor role plus licensing details. The base
// identity is stored inline so every doctor document lives in the shared
// users collection and can log in like any other user.
type Doctor struct {
	auth.User     `bson:",inline"`
	LicenseNumber string `bson:"license_number" json:"license_number" example:"MD-482910"`
	Specialty     string `bson:"specialty,omitempty" json:"specialty,omitempty" example:"cardiology"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty" example:"+34600111222"`
}

// CreateDoctorRequest represents a doctor registration request
type CreateDoctorRequest struct {
	Email         string `json:"email" validate:"required,email" example:"doc@example.com"`
	Password      string `json:"password" validate:"required,password" example:"Password123"`
	FirstName     string `json:"first_name" validate:"required" example:"Maria"`
	LastName      string `json:"last_name" validate:"required" example:"Lopez"`
	LicenseNumber string `json:"license_number" validate:"required" example:"MD-482910"`
	Specialty     string `json:"specialty,omitempty" example:"cardiology"`
	Phone         string `json:"phone,omitempty" example:"+34600111222"`
}

// DoctorResponse is the public view of a doctor. Password hash and reset
// fields never leave the service.
type DoctorResponse struct {
	ID            string `json:"id" example:"683cdb8aa96ad71e8e075bd1"`
	Email         string `json:"email" example:"doc@example.com"`
	FirstName     string `json:"first_name" example:"Maria"`
	LastName      string `json:"last_name" example:"Lopez"`
	LicenseNumber string `json:"license_number" example:"MD-482910"`
	Specialty     string `json:"specialty,omitempty" example:"cardiology"`
	Phone         string `json:"phone,omitempty" example:"+34600111222"`
}

func toResponse(d *Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		LicenseNumber: d.LicenseNumber,
		Specialty:     d.Specialty,
		Phone:         d.Phone,
	}
}
