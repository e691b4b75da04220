package documents

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockDocumentsRepo is a mock implementation of DocumentsRepo
type MockDocumentsRepo struct {
	mock.Mock
}

func (m *MockDocumentsRepo) InsertMany(ctx context.Context, docs []*Document) ([]bson.ObjectID, error) {
	args := m.Called(ctx, docs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

func TestService_SaveMany(t *testing.T) {
	ownerID := bson.NewObjectID()

	t.Run("bulk insert returns ids in input order", func(t *testing.T) {
		repo := new(MockDocumentsRepo)
		first := bson.NewObjectID()
		second := bson.NewObjectID()

		repo.On("InsertMany", mock.Anything, mock.MatchedBy(func(docs []*Document) bool {
			return len(docs) == 2 &&
				docs[0].OwnerID == ownerID &&
				docs[0].Name == "lab-results.pdf" &&
				docs[1].Name == "xray.png"
		})).Return([]bson.ObjectID{first, second}, nil)

		service := NewService(repo, silentLogger)
		resp, err := service.SaveMany(context.Background(), ownerID, SaveManyRequest{
			Files: []DocumentUpload{
				{Name: "lab-results.pdf", MimeType: "application/pdf", Content: []byte("pdf")},
				{Name: "xray.png", MimeType: "image/png", Content: []byte("png")},
			},
		})

		assert.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, []string{first.Hex(), second.Hex()}, resp.IDs)
		repo.AssertExpectations(t)
	})

	t.Run("empty batch skips the database", func(t *testing.T) {
		repo := new(MockDocumentsRepo)

		service := NewService(repo, silentLogger)
		resp, err := service.SaveMany(context.Background(), ownerID, SaveManyRequest{})

		assert.NoError(t, err)
		require.NotNil(t, resp)
		assert.Empty(t, resp.IDs)
		repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	})

	t.Run("insert failure", func(t *testing.T) {
		repo := new(MockDocumentsRepo)
		repo.On("InsertMany", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		service := NewService(repo, silentLogger)
		_, err := service.SaveMany(context.Background(), ownerID, SaveManyRequest{
			Files: []DocumentUpload{{Name: "a.txt", Content: []byte("x")}},
		})

		assert.ErrorIs(t, err, ErrServer)
	})
}
