package mongo

import (
	"context"

	"medibase/internal/services/medical"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	vaccinationsCollection = "vaccination_schedules"
	allergiesCollection    = "allergy_data"
)

// VaccinationsRepo implements medical.VaccinationsRepo. The unique
// patient_id index enforces one schedule per patient even under concurrent
// upserts.
type VaccinationsRepo struct {
	dao *DAO[medical.VaccinationSchedule]
}

// NewVaccinationsRepo creates a new vaccination schedules repository
func NewVaccinationsRepo(db *mongo.Database) *VaccinationsRepo {
	return &VaccinationsRepo{dao: NewDAO[medical.VaccinationSchedule](db, vaccinationsCollection)}
}

// EnsureIndexes creates the unique patient_id index.
func (r *VaccinationsRepo) EnsureIndexes(ctx context.Context) error {
	return ensurePatientIDIndex(ctx, r.dao.Collection())
}

func (r *VaccinationsRepo) Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*medical.VaccinationSchedule, bool, error) {
	return r.dao.Upsert(ctx, bson.M{"patient_id": patientID}, set)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.dao.Delete(ctx, id)
}

// AllergiesRepo implements medical.AllergiesRepo.
type AllergiesRepo struct {
	dao *DAO[medical.AllergyData]
}

// NewAllergiesRepo creates a new allergy data repository
func NewAllergiesRepo(db *mongo.Database) *AllergiesRepo {
	return &AllergiesRepo{dao: NewDAO[medical.AllergyData](db, allergiesCollection)}
}

// EnsureIndexes creates the unique patient_id index.
func (r *AllergiesRepo) EnsureIndexes(ctx context.Context) error {
	return ensurePatientIDIndex(ctx, r.dao.Collection())
}

func (r *AllergiesRepo) Upsert(ctx context.Context, patientID bson.ObjectID, set bson.M) (*medical.AllergyData, bool, error) {
	return r.dao.Upsert(ctx, bson.M{"patient_id": patientID}, set)
}

func (r *AllergiesRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.dao.Delete(ctx, id)
}

func ensurePatientIDIndex(ctx context.Context, coll *mongo.Collection) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patient_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
