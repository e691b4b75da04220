package patients

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PatientsRepo defines the persistence operations the patients service
// needs. Lookups return (nil, nil) on miss; Update returns the post-image
// or nil when the id does not exist.
type PatientsRepo interface {
	Create(ctx context.Context, patient *Patient) (*Patient, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Patient, error)
	FindByEmail(ctx context.Context, email string) (*Patient, error)
	Update(ctx context.Context, id bson.ObjectID, patch bson.M) (*Patient, error)
}
