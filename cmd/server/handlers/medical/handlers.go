package medical

import (
	"context"

	"medibase/cmd/server/handlers/handlerutil"
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/medical"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MedicalService defines the interface for the medical sub-records service
type MedicalService interface {
	PutVaccinationSchedule(ctx context.Context, patientID bson.ObjectID, req medical.PutVaccinationScheduleRequest) (*medical.VaccinationSchedule, error)
	PutAllergyData(ctx context.Context, patientID bson.ObjectID, req medical.PutAllergyDataRequest) (*medical.AllergyData, error)
}

// Handlers contains the medical sub-record HTTP handlers
type Handlers struct {
	medicalService MedicalService
	validator      *validator.Validate
}

// NewHandlers creates new medical handlers
func NewHandlers(medicalService MedicalService, validator *validator.Validate) *Handlers {
	return &Handlers{
		medicalService: medicalService,
		validator:      validator,
	}
}

// PutVaccinationSchedule replaces the caller's vaccination schedule
func (h *Handlers) PutVaccinationSchedule(c *fiber.Ctx) error {
	patientID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req medical.PutVaccinationScheduleRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "PutVaccinationSchedule"); err != nil {
		return err
	}

	record, err := h.medicalService.PutVaccinationSchedule(c.Context(), patientID, req)
	if err != nil {
		logger.L().Error("put vaccination schedule service failed", "handler", "PutVaccinationSchedule",
			"patientID", patientID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, record)
}

// PutAllergyData replaces the caller's allergy data
func (h *Handlers) PutAllergyData(c *fiber.Ctx) error {
	patientID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req medical.PutAllergyDataRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "PutAllergyData"); err != nil {
		return err
	}

	record, err := h.medicalService.PutAllergyData(c.Context(), patientID, req)
	if err != nil {
		logger.L().Error("put allergy data service failed", "handler", "PutAllergyData",
			"patientID", patientID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, record)
}
