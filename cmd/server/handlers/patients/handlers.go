package patients

import (
	"context"
	"errors"

	"medibase/cmd/server/handlers/handlerutil"
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/patients"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// PatientsService defines the interface for patients service
type PatientsService interface {
	Create(ctx context.Context, req patients.CreatePatientRequest, createdBy string) (*patients.PatientResponse, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*patients.PatientResponse, error)
}

// Handlers contains the patients HTTP handlers
type Handlers struct {
	patientsService PatientsService
	validator       *validator.Validate
}

// NewHandlers creates new patients handlers
func NewHandlers(patientsService PatientsService, validator *validator.Validate) *Handlers {
	return &Handlers{
		patientsService: patientsService,
		validator:       validator,
	}
}

// Create registers a new patient (doctor or admin, enforced by the route chain)
func (h *Handlers) Create(c *fiber.Ctx) error {
	creatorID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req patients.CreatePatientRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreatePatient"); err != nil {
		return err
	}

	resp, err := h.patientsService.Create(c.Context(), req, creatorID.Hex())
	if err != nil {
		if errors.Is(err, patients.ErrUserAlreadyExists) {
			return httperr.Fail(httperr.E{Status: 409, Message: err.Error()})
		}
		logger.L().Error("create patient service failed", "handler", "CreatePatient", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.Created(c, resp)
}

// Get returns one patient by id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractIDParam(c, "GetPatient", patients.ErrPatientNotFound)
	if err != nil {
		return err
	}

	resp, err := h.patientsService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, patients.ErrPatientNotFound) {
			return handlerutil.NotFoundError(err)
		}
		logger.L().Error("get patient service failed", "handler", "GetPatient", "patientID", id.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}
