package handlerutil

import (
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// successEnvelope is the happy half of the response contract: every
// successful request renders {"success": true, "data": ...}.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// OK writes data inside the success envelope with status 200.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(successEnvelope{Success: true, Data: data})
}

// Created writes data inside the success envelope with status 201.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(successEnvelope{Success: true, Data: data})
}

func NotFoundError(err error) error {
	return httperr.Fail(httperr.E{
		Status:  404,
		Message: err.Error(),
	})
}

// GetUserID extracts the authenticated user's id from fiber context
func GetUserID(c *fiber.Ctx) (bson.ObjectID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		logger.L().Error("user ID not found in context", "handler", "getUserID", "path", c.Path())
		return bson.ObjectID{}, httperr.Fail(httperr.ErrUnauthorized)
	}

	userID, err := bson.ObjectIDFromHex(userIDStr)
	if err != nil {
		logger.L().Error("invalid user ID", "handler", "getUserID", "userIDStr", userIDStr, "path", c.Path(), "error", err)
		return bson.ObjectID{}, httperr.Fail(httperr.ErrUnauthorized)
	}

	return userID, nil
}

// GetRole extracts the authenticated user's role from fiber context
func GetRole(c *fiber.Ctx) (auth.Role, error) {
	roleStr, ok := c.Locals("userRole").(string)
	if !ok {
		logger.L().Error("role not found in context", "handler", "getRole", "path", c.Path())
		return "", httperr.Fail(httperr.ErrUnauthorized)
	}

	role := auth.Role(roleStr)
	if !role.Valid() {
		logger.L().Error("unknown role in context", "handler", "getRole", "role", roleStr, "path", c.Path())
		return "", httperr.Fail(httperr.ErrUnauthorized)
	}

	return role, nil
}

// TokenPayload rebuilds the verified claim pair from fiber context.
func TokenPayload(c *fiber.Ctx) (auth.TokenPayload, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return auth.TokenPayload{}, err
	}
	role, err := GetRole(c)
	if err != nil {
		return auth.TokenPayload{}, err
	}
	return auth.TokenPayload{ID: userID, Role: role}, nil
}

// ParseAndValidateBody parses request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ExtractIDParam extracts and validates an ObjectID from the :id URL
// parameter. Malformed ids render the same 404 as missing records.
func ExtractIDParam(c *fiber.Ctx, handlerName string, notFoundErr error) (bson.ObjectID, error) {
	idStr := c.Params("id")
	if idStr == "" {
		logger.L().Warn("missing id parameter", "handler", handlerName, "path", c.Path())
		return bson.ObjectID{}, NotFoundError(notFoundErr)
	}

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		logger.L().Warn("invalid id parameter", "handler", handlerName, "idStr", idStr, "error", err)
		return bson.ObjectID{}, NotFoundError(notFoundErr)
	}

	return id, nil
}
