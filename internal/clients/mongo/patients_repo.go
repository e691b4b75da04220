package mongo

import (
	"context"

	"medibase/internal/services/auth"
	"medibase/internal/services/patients"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// PatientsRepo implements patients.PatientsRepo. Patient documents live in
// the shared users collection under the patient role.
type PatientsRepo struct {
	dao *DAO[patients.Patient]
}

// NewPatientsRepo creates a new patients repository
func NewPatientsRepo(db *mongo.Database) *PatientsRepo {
	return &PatientsRepo{dao: NewDAO[patients.Patient](db, usersCollection)}
}

func (r *PatientsRepo) Create(ctx context.Context, patient *patients.Patient) (*patients.Patient, error) {
	return r.dao.Create(ctx, patient)
}

func (r *PatientsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*patients.Patient, error) {
	matches, err := r.dao.Find(ctx, bson.M{"_id": id, "role": auth.RolePatient})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// FindByEmail matches against every user, not just patients, so the
// conflict check catches emails held by doctors or admins too.
func (r *PatientsRepo) FindByEmail(ctx context.Context, email string) (*patients.Patient, error) {
	matches, err := r.dao.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *PatientsRepo) Update(ctx context.Context, id bson.ObjectID, patch bson.M) (*patients.Patient, error) {
	return r.dao.Update(ctx, id, patch)
}
