package documents

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DocumentsRepo defines the persistence operations the documents service
// needs. InsertMany returns generated ids in input order; empty input is a
// no-op returning an empty slice.
type DocumentsRepo interface {
	InsertMany(ctx context.Context, docs []*Document) ([]bson.ObjectID, error)
}
