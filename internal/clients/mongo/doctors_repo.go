package mongo

import (
	"context"

	"medibase/internal/services/auth"
	"medibase/internal/services/doctors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// DoctorsRepo implements doctors.DoctorsRepo. Doctor documents live in the
// shared users collection under the doctor role.
type DoctorsRepo struct {
	dao *DAO[doctors.Doctor]
}

// NewDoctorsRepo creates a new doctors repository
func NewDoctorsRepo(db *mongo.Database) *DoctorsRepo {
	return &DoctorsRepo{dao: NewDAO[doctors.Doctor](db, usersCollection)}
}

func (r *DoctorsRepo) Create(ctx context.Context, doctor *doctors.Doctor) (*doctors.Doctor, error) {
	return r.dao.Create(ctx, doctor)
}

func (r *DoctorsRepo) FindByID(ctx context.Context, id bson.ObjectID) (*doctors.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": id, "role": auth.RoleDoctor})
}

// FindByEmailOrLicense matches against every user for the email and against
// doctor documents for the license number, so a doctor can never shadow an
// existing patient's email.
func (r *DoctorsRepo) FindByEmailOrLicense(ctx context.Context, email, licenseNumber string) (*doctors.Doctor, error) {
	return r.findOne(ctx, bson.M{
		"$or": []bson.M{
			{"email": email},
			{"license_number": licenseNumber},
		},
	})
}

func (r *DoctorsRepo) findOne(ctx context.Context, filter bson.M) (*doctors.Doctor, error) {
	matches, err := r.dao.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}
