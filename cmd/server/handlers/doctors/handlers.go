package doctors

import (
	"context"
	"errors"

	"medibase/cmd/server/handlers/handlerutil"
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/doctors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DoctorsService defines the interface for doctors service
type DoctorsService interface {
	Create(ctx context.Context, req doctors.CreateDoctorRequest, createdBy string) (*doctors.DoctorResponse, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*doctors.DoctorResponse, error)
}

// Handlers contains the doctors HTTP handlers
type Handlers struct {
	doctorsService DoctorsService
	validator      *validator.Validate
}

// NewHandlers creates new doctors handlers
func NewHandlers(doctorsService DoctorsService, validator *validator.Validate) *Handlers {
	return &Handlers{
		doctorsService: doctorsService,
		validator:      validator,
	}
}

// Create registers a new doctor (admin only, enforced by the route chain)
func (h *Handlers) Create(c *fiber.Ctx) error {
	adminID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req doctors.CreateDoctorRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreateDoctor"); err != nil {
		return err
	}

	resp, err := h.doctorsService.Create(c.Context(), req, adminID.Hex())
	if err != nil {
		if errors.Is(err, doctors.ErrUserAlreadyExists) {
			return httperr.Fail(httperr.E{Status: 409, Message: err.Error()})
		}
		logger.L().Error("create doctor service failed", "handler", "CreateDoctor", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.Created(c, resp)
}

// Get returns one doctor by id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := handlerutil.ExtractIDParam(c, "GetDoctor", doctors.ErrDoctorNotFound)
	if err != nil {
		return err
	}

	resp, err := h.doctorsService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			return handlerutil.NotFoundError(err)
		}
		logger.L().Error("get doctor service failed", "handler", "GetDoctor", "doctorID", id.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}
