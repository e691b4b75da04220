package auth

import (
	"context"
	"errors"

	"medibase/cmd/server/handlers/handlerutil"
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/logger"
	"medibase/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuthService defines the interface for auth service
type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, req auth.ForgotPasswordRequest) (*auth.MessageResponse, error)
	ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) (*auth.MessageResponse, error)
	UpdatePassword(ctx context.Context, payload auth.TokenPayload, req auth.UpdatePasswordRequest) (*auth.MessageResponse, error)
	GetUserByID(ctx context.Context, id bson.ObjectID) (*auth.User, error)
}

// Handlers contains the auth HTTP handlers
type Handlers struct {
	authService AuthService
	validator   *validator.Validate
}

// NewHandlers creates new auth handlers
func NewHandlers(authService AuthService, validator *validator.Validate) *Handlers {
	return &Handlers{
		authService: authService,
		validator:   validator,
	}
}

// Login authenticates a user and returns an access token
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Login"); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return httperr.Fail(httperr.E{Status: 401, Message: err.Error()})
		}
		logger.L().Error("login service failed", "handler", "Login", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}

// ForgotPassword starts the password reset flow
func (h *Handlers) ForgotPassword(c *fiber.Ctx) error {
	var req auth.ForgotPasswordRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "ForgotPassword"); err != nil {
		return err
	}

	resp, err := h.authService.RequestPasswordReset(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return httperr.Fail(httperr.E{Status: 401, Message: err.Error()})
		}
		logger.L().Error("forgot password service failed", "handler", "ForgotPassword", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}

// ResetPassword completes the password reset flow
func (h *Handlers) ResetPassword(c *fiber.Ctx) error {
	var req auth.ResetPasswordRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "ResetPassword"); err != nil {
		return err
	}

	resp, err := h.authService.ResetPassword(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return httperr.Fail(httperr.E{Status: 401, Message: err.Error()})
		case errors.Is(err, auth.ErrSamePassword):
			return httperr.Fail(httperr.E{Status: 400, Message: err.Error()})
		}
		logger.L().Error("reset password service failed", "handler", "ResetPassword", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}

// UpdatePassword changes the password of the authenticated user
func (h *Handlers) UpdatePassword(c *fiber.Ctx) error {
	payload, err := handlerutil.TokenPayload(c)
	if err != nil {
		return err
	}

	var req auth.UpdatePasswordRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "UpdatePassword"); err != nil {
		return err
	}

	resp, err := h.authService.UpdatePassword(c.Context(), payload, req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return handlerutil.NotFoundError(err)
		case errors.Is(err, auth.ErrSamePassword):
			return httperr.Fail(httperr.E{Status: 400, Message: err.Error()})
		}
		logger.L().Error("update password service failed", "handler", "UpdatePassword",
			"userID", payload.ID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, resp)
}

// Me returns the authenticated user's profile
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return handlerutil.NotFoundError(err)
		}
		logger.L().Error("me service failed", "handler", "Me", "userID", userID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return handlerutil.OK(c, user)
}
