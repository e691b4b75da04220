package documents

import (
	"context"
	"log/slog"
	"time"

	"medibase/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service stores uploaded documents.
type Service struct {
	repo DocumentsRepo
	log  *slog.Logger
}

// NewService creates a new documents service
func NewService(repo DocumentsRepo, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// SaveMany stores a batch of uploads for ownerID in one bulk insert and
// returns the generated ids in input order. An empty batch returns an empty
// id list without touching the database.
func (s *Service) SaveMany(ctx context.Context, ownerID bson.ObjectID, req SaveManyRequest) (*SaveManyResponse, error) {
	if len(req.Files) == 0 {
		return &SaveManyResponse{IDs: []string{}}, nil
	}

	now := time.Now().UTC()
	docs := make([]*Document, 0, len(req.Files))
	for _, file := range req.Files {
		docs = append(docs, &Document{
			OwnerID:    ownerID,
			Name:       sanitize.Clean(file.Name),
			MimeType:   sanitize.Clean(file.MimeType),
			Content:    file.Content,
			UploadedAt: now,
		})
	}

	ids, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		s.log.Error("failed to insert documents", "error", err, "owner_id", ownerID.Hex(), "count", len(docs))
		return nil, ErrServer
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return &SaveManyResponse{IDs: out}, nil
}
