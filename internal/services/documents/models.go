package documents

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Document is one stored upload. Content travels base64-encoded over the
// API and is stored as raw bytes.
type Document struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID    bson.ObjectID `bson:"owner_id" json:"owner_id"`
	Name       string        `bson:"name" json:"name" example:"lab-results.pdf"`
	MimeType   string        `bson:"mime_type,omitempty" json:"mime_type,omitempty" example:"application/pdf"`
	Content    []byte        `bson:"content" json:"-"`
	UploadedAt time.Time     `bson:"uploaded_at" json:"uploaded_at"`
}

// DocumentUpload is one file in a bulk upload request.
type DocumentUpload struct {
	Name     string `json:"name" validate:"required" example:"lab-results.pdf"`
	MimeType string `json:"mime_type,omitempty" example:"application/pdf"`
	Content  []byte `json:"content" validate:"required"`
}

// SaveManyRequest carries a batch of files to store.
type SaveManyRequest struct {
	Files []DocumentUpload `json:"files" validate:"dive"`
}

// SaveManyResponse lists the ids of the stored documents, in input order.
type SaveManyResponse struct {
	IDs []string `json:"ids"`
}
