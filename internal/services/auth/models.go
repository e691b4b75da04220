package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the authorization level carried by every user and token.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User is the base identity shared by patients, doctors and admins.
// At most one active, non-expired reset token exists at a time; both
// reset fields are cleared on a successful password reset.
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Email             string        `bson:"email" json:"email" example:"test@example.com"`
	PasswordHash      string        `bson:"password_hash" json:"-"`
	Role              Role          `bson:"role" json:"role" example:"patient"`
	FirstName         string        `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName          string        `bson:"last_name,omitempty" json:"last_name,omitempty"`
	ResetToken        string        `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpires *time.Time    `bson:"reset_token_expires,omitempty" json:"-"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
	UpdatedBy         string        `bson:"updated_by,omitempty" json:"-"`
}

// TokenPayload is the verified claim set of an access token.
type TokenPayload struct {
	ID   bson.ObjectID
	Role Role
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"test@example.com"`
	Password string `json:"password" validate:"required" example:"Password123"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// ForgotPasswordRequest starts the reset flow for the given email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"test@example.com"`
}

// ResetPasswordRequest completes the reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,password" example:"Password123"`
}

// UpdatePasswordRequest changes the password of an authenticated user.
type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,password" example:"Password123"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"Password reset successfully"`
}
