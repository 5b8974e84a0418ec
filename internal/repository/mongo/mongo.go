package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msomdec/photoshare/internal/domain"
)

// DB wraps a connected MongoDB client and exposes the collection-backed
// repositories. One DB instance is shared by all services.
type DB struct {
	client *mongo.Client
	photos *PhotoRepository
	users  *UserRepository
}

// New connects to MongoDB at the given URI and selects dbName.
func New(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	return &DB{
		client: client,
		photos: &PhotoRepository{col: db.Collection("photos")},
		users:  &UserRepository{col: db.Collection("users")},
	}, nil
}

// EnsureIndexes creates the indexes the read and auth paths rely on:
// a unique index on username and a descending index on the like counter.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.users.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}

	_, err = d.photos.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "likes", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create likes index: %w", err)
	}
	return nil
}

// Photos returns the photo repository.
func (d *DB) Photos() domain.PhotoRepository { return d.photos }

// Users returns the user repository.
func (d *DB) Users() domain.UserRepository { return d.users }

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// oidFromHex converts an id from its wire form. Malformed ids cannot refer
// to any stored document, so they map to ErrNotFound rather than a distinct
// validation failure.
func oidFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

func oidsToHex(oids []primitive.ObjectID) []string {
	ids := make([]string, len(oids))
	for i, oid := range oids {
		ids[i] = oid.Hex()
	}
	return ids
}

func oidsFromHex(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := oidFromHex(id)
		if err != nil {
			return nil, err
		}
		oids[i] = oid
	}
	return oids, nil
}

func isDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}
