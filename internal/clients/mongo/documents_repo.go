package mongo

import (
	"context"

	"medibase/internal/services/documents"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const documentsCollection = "documents"

// DocumentsRepo implements documents.DocumentsRepo.
type DocumentsRepo struct {
	dao *DAO[documents.Document]
}

// NewDocumentsRepo creates a new documents repository
func NewDocumentsRepo(db *mongo.Database) *DocumentsRepo {
	return &DocumentsRepo{dao: NewDAO[documents.Document](db, documentsCollection)}
}

func (r *DocumentsRepo) InsertMany(ctx context.Context, docs []*documents.Document) ([]bson.ObjectID, error) {
	return r.dao.InsertMany(ctx, docs)
}
