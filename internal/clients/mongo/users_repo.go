package mongo

import (
	"context"
	"time"

	"medibase/internal/services/auth"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// usersCollection holds every account regardless of role; the role field
// discriminates. Doctors and patients are stored here too, with their extra
// fields alongside the inline base identity.
const usersCollection = "users"

// UsersRepo implements auth.UsersRepo on top of the generic DAO.
type UsersRepo struct {
	dao *DAO[auth.User]
}

// NewUsersRepo creates a new users repository
func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{dao: NewDAO[auth.User](db, usersCollection)}
}

// EnsureIndexes creates the unique email index and the sparse unique
// license-number index (only doctor documents carry the field).
func (r *UsersRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.dao.Collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "license_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	return err
}

func (r *UsersRepo) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	return r.dao.Create(ctx, user)
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) FindByID(ctx context.Context, id bson.ObjectID) (*auth.User, error) {
	return r.dao.Read(ctx, id)
}

// FindByActiveResetToken matches on the exact token with an unexpired
// expiry, collapsing unknown and expired tokens into a single miss.
func (r *UsersRepo) FindByActiveResetToken(ctx context.Context, token string, now time.Time) (*auth.User, error) {
	return r.findOne(ctx, bson.M{
		"reset_token":         token,
		"reset_token_expires": bson.M{"$gt": now},
	})
}

func (r *UsersRepo) Update(ctx context.Context, id bson.ObjectID, patch bson.M) (*auth.User, error) {
	return r.dao.Update(ctx, id, patch)
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (*auth.User, error) {
	users, err := r.dao.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}
