package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medibase/internal/config"
	"medibase/internal/utils/crypto"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles authentication and the password lifecycle.
type Service struct {
	repo   UsersRepo
	mailer Mailer
	config config.Config
	log    *slog.Logger
}

// NewService creates a new auth service
func NewService(repo UsersRepo, mailer Mailer, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		config: cfg,
		log:    log,
	}
}

// Login authenticates a user by email and password and issues a signed
// token. Unknown email and wrong password produce the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to find user by email", "error", err)
		return nil, ErrServer
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := crypto.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		s.log.Error("failed to generate token", "error", err)
		return nil, ErrServer
	}

	return &LoginResponse{Token: token}, nil
}

// RequestPasswordReset generates a single-use reset token for the given
// email, persists it on the user and mails a reset link. The token is not
// retried on failure; callers simply request a new one.
func (s *Service) RequestPasswordReset(ctx context.Context, req ForgotPasswordRequest) (*MessageResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to find user by email", "error", err)
		return nil, ErrServer
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.config.ResetTokenTTLMinutes) * time.Minute
	token, expires, err := crypto.NewResetToken(ttl)
	if err != nil {
		s.log.Error("failed to generate reset token", "error", err)
		return nil, ErrServer
	}

	patch := bson.M{
		"reset_token":         token,
		"reset_token_expires": expires,
		"updated_at":          time.Now().UTC(),
		"updated_by":          user.ID.Hex(),
	}
	updated, err := s.repo.Update(ctx, user.ID, patch)
	if err != nil || updated == nil {
		s.log.Error("failed to persist reset token", "error", err, "user_id", user.ID.Hex())
		return nil, ErrServer
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.config.FrontendURL, "/"), token)
	body := fmt.Sprintf(`Click on the link to reset your password: <a href="%s">Reset password</a>`, link)

	if err := s.mailer.Send(user.Email, "Password reset", body); err != nil {
		s.log.Error("failed to send reset email", "error", err, "user_id", user.ID.Hex())
		return nil, ErrServer
	}

	return &MessageResponse{Message: "Token generated successfully and email sent"}, nil
}

// ResetPassword completes the reset flow. Expired and unknown tokens fail
// identically; a new password equal to the current one is rejected without
// mutating stored state. On success both token fields are cleared, so the
// same token cannot be used twice.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	user, err := s.repo.FindByActiveResetToken(ctx, req.Token, time.Now().UTC())
	if err != nil {
		s.log.Error("failed to look up reset token", "error", err)
		return nil, ErrServer
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if crypto.CheckPassword(req.NewPassword, user.PasswordHash) == nil {
		return nil, ErrSamePassword
	}

	hash, err := crypto.HashPassword(req.NewPassword, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, ErrServer
	}

	patch := bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"updated_at":    time.Now().UTC(),
			"updated_by":    user.ID.Hex(),
		},
		"$unset": bson.M{
			"reset_token":         "",
			"reset_token_expires": "",
		},
	}
	updated, err := s.repo.Update(ctx, user.ID, patch)
	if err != nil || updated == nil {
		s.log.Error("failed to reset password", "error", err, "user_id", user.ID.Hex())
		return nil, ErrServer
	}

	return &MessageResponse{Message: "Password reset successfully"}, nil
}

// UpdatePassword changes the password of an authenticated user identified
// by its verified token payload.
func (s *Service) UpdatePassword(ctx context.Context, payload TokenPayload, req UpdatePasswordRequest) (*MessageResponse, error) {
	user, err := s.repo.FindByID(ctx, payload.ID)
	if err != nil {
		s.log.Error("failed to load user", "error", err, "user_id", payload.ID.Hex())
		return nil, ErrServer
	}
	if user == nil {
		// Deleted mid-session.
		return nil, ErrUserNotFound
	}

	if crypto.CheckPassword(req.NewPassword, user.PasswordHash) == nil {
		return nil, ErrSamePassword
	}

	hash, err := crypto.HashPassword(req.NewPassword, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, ErrServer
	}

	patch := bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
		"updated_by":    payload.ID.Hex(),
	}
	updated, err := s.repo.Update(ctx, user.ID, patch)
	if err != nil || updated == nil {
		s.log.Error("failed to update password", "error", err, "user_id", user.ID.Hex())
		return nil, ErrServer
	}

	return &MessageResponse{Message: "Password updated successfully"}, nil
}

// GetUserByID loads a user or fails with ErrUserNotFound.
func (s *Service) GetUserByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load user", "error", err, "user_id", id.Hex())
		return nil, ErrServer
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GenerateToken issues an HS256 token embedding {id, role, nbf} with the
// configured expiry (one hour by default).
func (s *Service) GenerateToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": string(user.Role),
		"nbf":  now.Unix(),
		"exp":  now.Add(time.Duration(s.config.TokenTTLMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
