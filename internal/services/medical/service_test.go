package medical

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"medibase/internal/services/patients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockVaccinationsRepo is a mock implementation of VaccinationsRepo
type MockVaccinationsRepo struct {
	mock.Mock
}

func (m *MockVaccinationsRepo) Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*VaccinationSchedule, bool, error) {
	args := m.Called(ctx, patientID, set)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*VaccinationSchedule), args.Bool(1), args.Error(2)
}

func (m *MockVaccinationsRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAllergiesRepo is a mock implementation of AllergiesRepo
type MockAllergiesRepo struct {
	mock.Mock
}

func (m *MockAllergiesRepo) Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*AllergyData, bool, error) {
	args := m.Called(ctx, patientID, set)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*AllergyData), args.Bool(1), args.Error(2)
}

func (m *MockAllergiesRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPatientPointers is a mock implementation of PatientPointers
type MockPatientPointers struct {
	mock.Mock
}

func (m *MockPatientPointers) SetMedicalRecord(ctx context.Context, patientID bson.ObjectID, field patients.MedicalField, recordID bson.ObjectID) error {
	args := m.Called(ctx, patientID, field, recordID)
	return args.Error(0)
}

func TestService_PutVaccinationSchedule(t *testing.T) {
	patientID := bson.NewObjectID()
	recordID := bson.NewObjectID()
	req := PutVaccinationScheduleRequest{
		Vaccines: []VaccineEntry{{Name: "MMR", Dose: 2, Date: "2024-10-01"}},
	}

	t.Run("upsert then pointer update", func(t *testing.T) {
		vaccinations := new(MockVaccinationsRepo)
		pointers := new(MockPatientPointers)

		record := &VaccinationSchedule{ID: recordID, PatientID: patientID, Vaccines: req.Vaccines}
		vaccinations.On("Upsert", mock.Anything, patientID, mock.MatchedBy(func(set bson.M) bool {
			return set["patient_id"] == patientID && set["updated_by"] == patientID.Hex()
		})).Return(record, true, nil)
		pointers.On("SetMedicalRecord", mock.Anything, patientID, patients.FieldVaccinationSchedule, recordID).Return(nil)

		service := NewService(vaccinations, new(MockAllergiesRepo), pointers, silentLogger)
		got, err := service.PutVaccinationSchedule(context.Background(), patientID, req)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, recordID, got.ID)
		vaccinations.AssertExpectations(t)
		pointers.AssertExpectations(t)
	})

	t.Run("pointer failure after insert deletes the new record", func(t *testing.T) {
		vaccinations := new(MockVaccinationsRepo)
		pointers := new(MockPatientPointers)

		record := &VaccinationSchedule{ID: recordID, PatientID: patientID}
		vaccinations.On("Upsert", mock.Anything, patientID, mock.Anything).Return(record, true, nil)
		pointers.On("SetMedicalRecord", mock.Anything, patientID, patients.FieldVaccinationSchedule, recordID).
			Return(errors.New("write failed"))
		vaccinations.On("Delete", mock.Anything, recordID).Return(nil)

		service := NewService(vaccinations, new(MockAllergiesRepo), pointers, silentLogger)
		got, err := service.PutVaccinationSchedule(context.Background(), patientID, req)

		assert.ErrorIs(t, err, ErrServer)
		assert.Nil(t, got)
		vaccinations.AssertExpectations(t)
	})

	t.Run("pointer failure after update keeps the record", func(t *testing.T) {
		vaccinations := new(MockVaccinationsRepo)
		pointers := new(MockPatientPointers)

		record := &VaccinationSchedule{ID: recordID, PatientID: patientID}
		vaccinations.On("Upsert", mock.Anything, patientID, mock.Anything).Return(record, false, nil)
		pointers.On("SetMedicalRecord", mock.Anything, patientID, patients.FieldVaccinationSchedule, recordID).
			Return(errors.New("write failed"))

		service := NewService(vaccinations, new(MockAllergiesRepo), pointers, silentLogger)
		_, err := service.PutVaccinationSchedule(context.Background(), patientID, req)

		assert.ErrorIs(t, err, ErrServer)
		vaccinations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("upsert failure", func(t *testing.T) {
		vaccinations := new(MockVaccinationsRepo)
		vaccinations.On("Upsert", mock.Anything, patientID, mock.Anything).
			Return(nil, false, errors.New("connection reset"))

		service := NewService(vaccinations, new(MockAllergiesRepo), new(MockPatientPointers), silentLogger)
		_, err := service.PutVaccinationSchedule(context.Background(), patientID, req)

		assert.ErrorIs(t, err, ErrServer)
	})
}

func TestService_PutAllergyData(t *testing.T) {
	patientID := bson.NewObjectID()
	recordID := bson.NewObjectID()
	req := PutAllergyDataRequest{
		Allergies: []AllergyEntry{{Allergen: "penicillin", Severity: "high"}},
	}

	t.Run("upsert then pointer update", func(t *testing.T) {
		allergies := new(MockAllergiesRepo)
		pointers := new(MockPatientPointers)

		record := &AllergyData{ID: recordID, PatientID: patientID, Allergies: req.Allergies}
		allergies.On("Upsert", mock.Anything, patientID, mock.Anything).Return(record, false, nil)
		pointers.On("SetMedicalRecord", mock.Anything, patientID, patients.FieldAllergyData, recordID).Return(nil)

		service := NewService(new(MockVaccinationsRepo), allergies, pointers, silentLogger)
		got, err := service.PutAllergyData(context.Background(), patientID, req)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, recordID, got.ID)
	})

	t.Run("pointer failure after insert deletes the new record even when delete fails", func(t *testing.T) {
		allergies := new(MockAllergiesRepo)
		pointers := new(MockPatientPointers)

		record := &AllergyData{ID: recordID, PatientID: patientID}
		allergies.On("Upsert", mock.Anything, patientID, mock.Anything).Return(record, true, nil)
		pointers.On("SetMedicalRecord", mock.Anything, patientID, patients.FieldAllergyData, recordID).
			Return(errors.New("write failed"))
		allergies.On("Delete", mock.Anything, recordID).Return(errors.New("also failed"))

		service := NewService(new(MockVaccinationsRepo), allergies, pointers, silentLogger)
		_, err := service.PutAllergyData(context.Background(), patientID, req)

		assert.ErrorIs(t, err, ErrServer)
		allergies.AssertExpectations(t)
	})
}
