package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UsersRepo defines the persistence operations the auth service needs.
// Lookups return (nil, nil) on miss; Update returns the post-image or nil
// when the id does not exist.
type UsersRepo interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	FindByActiveResetToken(ctx context.Context, token string, now time.Time) (*User, error)
	Update(ctx context.Context, id bson.ObjectID, patch bson.M) (*User, error)
}

// Mailer sends a single HTML mail. Implemented by internal/mailer.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
