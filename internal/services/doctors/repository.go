package doctors

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DoctorsRepo defines the persistence operations the doctors service needs.
// Lookups return (nil, nil) on miss.
type DoctorsRepo interface {
	Create(ctx context.Context, doctor *Doctor) (*Doctor, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Doctor, error)
	// FindByEmailOrLicense returns any user holding either the email or the
	// license number, used for the pre-insert conflict check.
	FindByEmailOrLicense(ctx context.Context, email, licenseNumber string) (*Doctor, error)
}
