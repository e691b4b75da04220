package doctors

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"medibase/cmd/server/middlewares"
	"medibase/cmd/server/testutil"
	authServices "medibase/internal/services/auth"
	"medibase/internal/services/doctors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	doctorsEndpoint = "/api/v1/doctors"
	testJWTSecret   = "test-jwt-secret-key-that-is-long-enough"
)

// MockDoctorsService mocks the doctors service
type MockDoctorsService struct {
	mock.Mock
}

func (m *MockDoctorsService) Create(ctx context.Context, req doctors.CreateDoctorRequest, createdBy string) (*doctors.DoctorResponse, error) {
	args := m.Called(ctx, req, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*doctors.DoctorResponse), args.Error(1)
}

func (m *MockDoctorsService) GetByID(ctx context.Context, id bson.ObjectID) (*doctors.DoctorResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*doctors.DoctorResponse), args.Error(1)
}

func setupApp(t *testing.T) (*MockDoctorsService, *fiber.App) {
	t.Helper()

	mockService := &MockDoctorsService{}
	app := testutil.CreateTestApp(t)
	v := testutil.CreateTestValidator(t)

	h := NewHandlers(mockService, v)
	jwtMW := testutil.SetupJWTMiddleware(testJWTSecret)

	grp := app.Group("/api/v1/doctors", jwtMW)
	grp.Post("/", middlewares.RequireRoles(authServices.RoleAdmin), h.Create)
	grp.Get("/:id", h.Get)

	return mockService, app
}

func validBody() map[string]string {
	return map[string]string{
		"email":          "doc@example.com",
		"password":       "Password123",
		"first_name":     "Maria",
		"last_name":      "Lopez",
		"license_number": "MD-482910",
	}
}

func TestCreateDoctorHandler(t *testing.T) {
	adminID := bson.NewObjectID()

	t.Run("admin can create a doctor", func(t *testing.T) {
		mockService, app := setupApp(t)
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(req doctors.CreateDoctorRequest) bool {
			return req.Email == "doc@example.com" && req.LicenseNumber == "MD-482910"
		}), adminID.Hex()).Return(&doctors.DoctorResponse{
			ID:            bson.NewObjectID().Hex(),
			Email:         "doc@example.com",
			LicenseNumber: "MD-482910",
		}, nil)

		token, err := testutil.CreateTestJWT(adminID.Hex(), authServices.RoleAdmin, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("POST", doctorsEndpoint+"/", validBody(), token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 201, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("doctor role is forbidden", func(t *testing.T) {
		mockService, app := setupApp(t)

		token, err := testutil.CreateTestJWT(bson.NewObjectID().Hex(), authServices.RoleDoctor, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("POST", doctorsEndpoint+"/", validBody(), token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 403, resp.StatusCode)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("conflict renders 409", func(t *testing.T) {
		mockService, app := setupApp(t)
		mockService.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, doctors.ErrUserAlreadyExists)

		token, err := testutil.CreateTestJWT(adminID.Hex(), authServices.RoleAdmin, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("POST", doctorsEndpoint+"/", validBody(), token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 409, resp.StatusCode)

		var env struct {
			Success bool           `json:"success"`
			Error   map[string]any `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.Equal(t, float64(409), env.Error["status"])
	})
}

func TestGetDoctorHandler(t *testing.T) {
	doctorID := bson.NewObjectID()

	t.Run("any authenticated role can read", func(t *testing.T) {
		mockService, app := setupApp(t)
		mockService.On("GetByID", mock.Anything, doctorID).Return(&doctors.DoctorResponse{
			ID:    doctorID.Hex(),
			Email: "doc@example.com",
		}, nil)

		token, err := testutil.CreateTestJWT(bson.NewObjectID().Hex(), authServices.RolePatient, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", doctorsEndpoint+"/"+doctorID.Hex(), nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("malformed id renders 404", func(t *testing.T) {
		mockService, app := setupApp(t)

		token, err := testutil.CreateTestJWT(bson.NewObjectID().Hex(), authServices.RoleDoctor, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", doctorsEndpoint+"/not-a-hex-id", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 404, resp.StatusCode)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown id renders 404", func(t *testing.T) {
		mockService, app := setupApp(t)
		mockService.On("GetByID", mock.Anything, doctorID).Return(nil, doctors.ErrDoctorNotFound)

		token, err := testutil.CreateTestJWT(bson.NewObjectID().Hex(), authServices.RoleAdmin, []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", doctorsEndpoint+"/"+doctorID.Hex(), nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 404, resp.StatusCode)
	})
}
