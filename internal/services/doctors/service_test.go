package doctors

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"medibase/internal/config"
	"medibase/internal/services/auth"
	"medibase/internal/utils/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockDoctorsRepo is a mock implementation of DoctorsRepo
type MockDoctorsRepo struct {
	mock.Mock
}

func (m *MockDoctorsRepo) Create(ctx context.Context, doctor *Doctor) (*Doctor, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Doctor), args.Error(1)
}

func (m *MockDoctorsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Doctor), args.Error(1)
}

func (m *MockDoctorsRepo) FindByEmailOrLicense(ctx context.Context, email, licenseNumber string) (*Doctor, error) {
	args := m.Called(ctx, email, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Doctor), args.Error(1)
}

func newTestService(repo DoctorsRepo) *Service {
	return NewService(repo, config.Config{BcryptCost: 12}, silentLogger)
}

func validRequest() CreateDoctorRequest {
	return CreateDoctorRequest{
		Email:         "doc@example.com",
		Password:      "Password123",
		FirstName:     "Maria",
		LastName:      "Lopez",
		LicenseNumber: "MD-482910",
		Specialty:     "cardiology",
	}
}

func TestService_Create(t *testing.T) {
	adminID := bson.NewObjectID().Hex()

	t.Run("successful creation", func(t *testing.T) {
		repo := new(MockDoctorsRepo)
		repo.On("FindByEmailOrLicense", mock.Anything, "doc@example.com", "MD-482910").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(d *Doctor) bool {
			return d.Email == "doc@example.com" &&
				d.Role == auth.RoleDoctor &&
				d.LicenseNumber == "MD-482910" &&
				d.UpdatedBy == adminID &&
				crypto.CheckPassword("Password123", d.PasswordHash) == nil
		})).Return(&Doctor{
			User: auth.User{
				ID:        bson.NewObjectID(),
				Email:     "doc@example.com",
				Role:      auth.RoleDoctor,
				FirstName: "Maria",
				LastName:  "Lopez",
			},
			LicenseNumber: "MD-482910",
			Specialty:     "cardiology",
		}, nil)

		service := newTestService(repo)
		resp, err := service.Create(context.Background(), validRequest(), adminID)

		assert.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "doc@example.com", resp.Email)
		assert.Equal(t, "MD-482910", resp.LicenseNumber)
		repo.AssertExpectations(t)
	})

	t.Run("email or license conflict blocks insert", func(t *testing.T) {
		repo := new(MockDoctorsRepo)
		repo.On("FindByEmailOrLicense", mock.Anything, "doc@example.com", "MD-482910").
			Return(&Doctor{LicenseNumber: "MD-482910"}, nil)

		service := newTestService(repo)
		resp, err := service.Create(context.Background(), validRequest(), adminID)

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email is lowercased and stripped of markup", func(t *testing.T) {
		repo := new(MockDoctorsRepo)
		repo.On("FindByEmailOrLicense", mock.Anything, "doc@example.com", "MD-482910").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(&Doctor{}, nil)

		req := validRequest()
		req.Email = "  Doc@Example.com "

		service := newTestService(repo)
		_, err := service.Create(context.Background(), req, adminID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_GetByID(t *testing.T) {
	doctorID := bson.NewObjectID()

	t.Run("found", func(t *testing.T) {
		repo := new(MockDoctorsRepo)
		repo.On("FindByID", mock.Anything, doctorID).Return(&Doctor{
			User:          auth.User{ID: doctorID, Email: "doc@example.com"},
			LicenseNumber: "MD-482910",
		}, nil)

		service := newTestService(repo)
		resp, err := service.GetByID(context.Background(), doctorID)

		assert.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, doctorID.Hex(), resp.ID)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockDoctorsRepo)
		repo.On("FindByID", mock.Anything, doctorID).Return(nil, nil)

		service := newTestService(repo)
		_, err := service.GetByID(context.Background(), doctorID)

		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
