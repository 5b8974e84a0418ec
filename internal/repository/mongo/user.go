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

// UserRepository implements domain.UserRepository on a mongo collection.
type UserRepository struct {
	col *mongo.Collection
}

type userDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Username        string               `bson:"username"`
	PasswordHash    string               `bson:"password"`
	OwnedPhotos     []primitive.ObjectID `bson:"photoList"`
	FavouritePhotos []primitive.ObjectID `bson:"favouritePhotoList"`
	LikedPhotos     []primitive.ObjectID `bson:"likedPhotoList"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:              d.ID.Hex(),
		Username:        d.Username,
		PasswordHash:    d.PasswordHash,
		OwnedPhotos:     oidsToHex(d.OwnedPhotos),
		FavouritePhotos: oidsToHex(d.FavouritePhotos),
		LikedPhotos:     oidsToHex(d.LikedPhotos),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		ID:              primitive.NewObjectID(),
		Username:        user.Username,
		PasswordHash:    user.PasswordHash,
		OwnedPhotos:     []primitive.ObjectID{},
		FavouritePhotos: []primitive.ObjectID{},
		LikedPhotos:     []primitive.ObjectID{},
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if isDuplicateKeyError(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	doc := userDoc{}
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// AppendOwnedPhoto pushes the photo id onto the owned list, preserving
// upload order.
func (r *UserRepository) AppendOwnedPhoto(ctx context.Context, userID, photoID string) error {
	return r.updateList(ctx, userID, photoID, "$push", "photoList")
}

func (r *UserRepository) AddLiked(ctx context.Context, userID, photoID string) error {
	return r.updateList(ctx, userID, photoID, "$addToSet", "likedPhotoList")
}

func (r *UserRepository) RemoveLiked(ctx context.Context, userID, photoID string) error {
	return r.updateList(ctx, userID, photoID, "$pull", "likedPhotoList")
}

func (r *UserRepository) AddFavourite(ctx context.Context, userID, photoID string) error {
	return r.updateList(ctx, userID, photoID, "$addToSet", "favouritePhotoList")
}

func (r *UserRepository) RemoveFavourite(ctx context.Context, userID, photoID string) error {
	return r.updateList(ctx, userID, photoID, "$pull", "favouritePhotoList")
}

func (r *UserRepository) updateList(ctx context.Context, userID, photoID, op, field string) error {
	uid, err := oidFromHex(userID)
	if err != nil {
		return err
	}
	pid, err := oidFromHex(photoID)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{op: bson.M{field: pid}})
	if err != nil {
		return fmt.Errorf("update %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) HasLiked(ctx context.Context, userID, photoID string) (bool, error) {
	return r.hasRef(ctx, userID, photoID, "likedPhotoList")
}

func (r *UserRepository) HasFavourited(ctx context.Context, userID, photoID string) (bool, error) {
	return r.hasRef(ctx, userID, photoID, "favouritePhotoList")
}

func (r *UserRepository) hasRef(ctx context.Context, userID, photoID, field string) (bool, error) {
	uid, err := oidFromHex(userID)
	if err != nil {
		return false, err
	}
	pid, err := oidFromHex(photoID)
	if err != nil {
		return false, err
	}

	// The user must exist regardless of membership.
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": uid})
	if err != nil {
		return false, fmt.Errorf("count user: %w", err)
	}
	if n == 0 {
		return false, domain.ErrNotFound
	}

	n, err = r.col.CountDocuments(ctx, bson.M{"_id": uid, field: pid})
	if err != nil {
		return false, fmt.Errorf("check %s membership: %w", field, err)
	}
	return n > 0, nil
}

func (r *UserRepository) ReplaceLists(ctx context.Context, userID string, owned, liked, favourites []string) (*domain.User, error) {
	uid, err := oidFromHex(userID)
	if err != nil {
		return nil, err
	}
	ownedIDs, err := oidsFromHex(owned)
	if err != nil {
		return nil, err
	}
	likedIDs, err := oidsFromHex(liked)
	if err != nil {
		return nil, err
	}
	favouriteIDs, err := oidsFromHex(favourites)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	doc := userDoc{}
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{
		"photoList":          ownedIDs,
		"likedPhotoList":     likedIDs,
		"favouritePhotoList": favouriteIDs,
	}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("replace photo lists: %w", err)
	}
	return doc.toDomain(), nil
}

// PullPhotoRefs strips the photo id from every referencing user in one bulk
// conditional update, never a read-all-then-write-each loop.
func (r *UserRepository) PullPhotoRefs(ctx context.Context, photoID string) error {
	pid, err := oidFromHex(photoID)
	if err != nil {
		return err
	}

	filter := bson.M{"$or": []bson.M{
		{"photoList": pid},
		{"likedPhotoList": pid},
		{"favouritePhotoList": pid},
	}}
	update := bson.M{"$pull": bson.M{
		"photoList":          pid,
		"likedPhotoList":     pid,
		"favouritePhotoList": pid,
	}}

	if _, err := r.col.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("pull photo references: %w", err)
	}
	return nil
}
