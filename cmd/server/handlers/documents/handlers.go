package documents

import (
	"context"

	"medibase/cmd/server/handlers/handlerutil"
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/documents"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DocumentsService defines the interface for documents service
type DocumentsService interface {
	SaveMany(ctx context.Context, ownerID bson.ObjectID, req documents.SaveManyRequest) (*documents.SaveManyResponse, error)
}

// Handlers contains the documents HTTP handlers
type Handlers struct {
	documentsService DocumentsService
	validator        *validator.Validate
}

// NewHandlers creates new documents handlers
func NewHandlers(documentsService DocumentsService, validator *validator.Validate) *Handlers {
	return &Handlers{
		documentsService: documentsService,
		validator:        validator,
	}
}

// Upload bulk-stores a batch of documents for the authenticated user
func (h *Handlers) Upload(c *fiber.Ctx) error {
	ownerID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req documents.SaveManyRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UploadDocuments"); err != nil {
		return err
	}

	resp, err := h.documentsService.SaveMany(c.Context(), ownerID, req)
	if err != nil {
		logger.L().Error("upload documents service failed", "handler", "UploadDocuments",
			"ownerID", ownerID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.Created(c, resp)
}
