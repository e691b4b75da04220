package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DAO is a typed pass-through to one MongoDB collection. It carries no
// entity-specific logic: validation and business invariants belong to the
// services. Driver errors propagate unmodified; the only translation is
// ErrNoDocuments -> (nil, nil) so callers get the "nil on miss" contract.
type DAO[T any] struct {
	collection *mongo.Collection
}

// NewDAO binds a DAO to the named collection.
func NewDAO[T any](db *mongo.Database, collection string) *DAO[T] {
	return &DAO[T]{collection: db.Collection(collection)}
}

// Collection exposes the underlying collection for index creation.
func (d *DAO[T]) Collection() *mongo.Collection {
	return d.collection
}

// Create inserts one entity and returns it.
func (d *DAO[T]) Create(ctx context.Context, entity *T) (*T, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := d.collection.InsertOne(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Read returns the entity with the given id, or nil when it does not exist.
func (d *DAO[T]) Read(ctx context.Context, id bson.ObjectID) (*T, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var entity T
	err := d.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Find returns all entities matching the filter, ordering unspecified.
func (d *DAO[T]) Find(ctx context.Context, filter bson.M) ([]*T, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	cursor, err := d.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []*T
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Update applies a partial field set to the entity with the given id and
// returns the post-image, or nil when the id does not exist. A plain patch
// is wrapped in $set; a patch whose keys are update operators ($set,
// $unset, ...) is used as the update document verbatim.
func (d *DAO[T]) Update(ctx context.Context, id bson.ObjectID, patch bson.M) (*T, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	err := d.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, asUpdateDoc(patch), opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the entity with the given id. Deleting a missing id is
// not an error.
func (d *DAO[T]) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := d.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Upsert replaces-or-inserts the single entity matching the filter with the
// given field set. The returned bool reports whether a new document was
// inserted, which callers need to decide compensation on follow-up failures.
func (d *DAO[T]) Upsert(ctx context.Context, filter, set bson.M) (*T, bool, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	res, err := d.collection.UpdateOne(ctx, filter, bson.M{"$set": set}, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, false, err
	}
	inserted := res.UpsertedCount > 0

	var entity T
	if err := d.collection.FindOne(ctx, filter).Decode(&entity); err != nil {
		return nil, inserted, err
	}
	return &entity, inserted, nil
}

// InsertMany bulk-inserts the entities and returns the generated ids.
// Empty input is a no-op returning an empty id list.
func (d *DAO[T]) InsertMany(ctx context.Context, entities []*T) ([]bson.ObjectID, error) {
	if len(entities) == 0 {
		return []bson.ObjectID{}, nil
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	docs := make([]any, len(entities))
	for i, e := range entities {
		docs[i] = e
	}

	res, err := d.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		if id, ok := raw.(bson.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// asUpdateDoc wraps a plain field patch in $set while passing operator
// documents through untouched.
func asUpdateDoc(patch bson.M) bson.M {
	for k := range patch {
		if strings.HasPrefix(k, "$") {
			return patch
		}
	}
	return bson.M{"$set": patch}
}
