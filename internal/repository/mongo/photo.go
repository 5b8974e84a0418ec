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

// PhotoRepository implements domain.PhotoRepository on a mongo collection.
type PhotoRepository struct {
	col *mongo.Collection
}

type photoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Base64    string             `bson:"base64"`
	Thumbnail string             `bson:"base64Thumbnail"`
	Name      string             `bson:"name"`
	Descr     string             `bson:"description"`
	Likes     int                `bson:"likes"`
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	doc := photoDoc{
		ID:        primitive.NewObjectID(),
		Base64:    photo.Base64,
		Thumbnail: photo.Thumbnail,
		Name:      photo.Name,
		Descr:     photo.Descr,
		Likes:     photo.Likes,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	photo.ID = doc.ID.Hex()
	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, err
	}

	doc := photoDoc{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}

	return &domain.Photo{
		ID:        doc.ID.Hex(),
		Base64:    doc.Base64,
		Thumbnail: doc.Thumbnail,
		Name:      doc.Name,
		Descr:     doc.Descr,
		Likes:     doc.Likes,
	}, nil
}

func (r *PhotoRepository) GetSummary(ctx context.Context, id string) (*domain.PhotoSummary, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{
		"base64": 1, "name": 1, "description": 1, "likes": 1,
	})
	doc := photoDoc{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find photo summary: %w", err)
	}

	return &domain.PhotoSummary{
		ID:     doc.ID.Hex(),
		Base64: doc.Base64,
		Name:   doc.Name,
		Descr:  doc.Descr,
		Likes:  doc.Likes,
	}, nil
}

func (r *PhotoRepository) GetThumbnail(ctx context.Context, id string) (*domain.PhotoThumbnail, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{
		"base64Thumbnail": 1, "name": 1, "description": 1,
	})
	doc := photoDoc{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find photo thumbnail: %w", err)
	}

	return &domain.PhotoThumbnail{
		ID:        doc.ID.Hex(),
		Thumbnail: doc.Thumbnail,
		Name:      doc.Name,
		Descr:     doc.Descr,
	}, nil
}

func (r *PhotoRepository) ListRecentIDs(ctx context.Context, limit int) ([]string, error) {
	return r.listIDs(ctx, bson.D{{Key: "_id", Value: -1}}, limit)
}

func (r *PhotoRepository) ListMostLikedIDs(ctx context.Context, limit int) ([]string, error) {
	return r.listIDs(ctx, bson.D{{Key: "likes", Value: -1}}, limit)
}

func (r *PhotoRepository) listIDs(ctx context.Context, sort bson.D, limit int) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(sort).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer cur.Close(ctx)

	ids := []string{}
	for cur.Next(ctx) {
		doc := struct {
			ID primitive.ObjectID `bson:"_id"`
		}{}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode photo id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return ids, nil
}

// IncrementLikes adjusts the like counter atomically with $inc. Decrements
// are filtered on the current counter so the value can never go below zero;
// a decrement of an already-zero counter is a no-op, not an error.
func (r *PhotoRepository) IncrementLikes(ctx context.Context, id string, delta int) error {
	oid, err := oidFromHex(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["likes"] = bson.M{"$gte": -delta}
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"likes": delta}})
	if err != nil {
		return fmt.Errorf("increment likes: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the photo is gone or the guard blocked an underflow.
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("count photo: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	oid, err := oidFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
