package domain

import "context"

// User represents a registered user of the application.
//
// The three photo lists hold Photo ids. OwnedPhotos is append-only and keeps
// upload order; LikedPhotos and FavouritePhotos are sets stored as lists
// (serialization order is not meaningful, membership is).
type User struct {
	ID              string
	Username        string
	PasswordHash    string
	OwnedPhotos     []string
	FavouritePhotos []string
	LikedPhotos     []string
}

// UserRepository defines persistence operations for users.
//
// The Add*/Remove* operations have set semantics: adding an id that is
// already present and removing one that is absent are both no-ops.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	AppendOwnedPhoto(ctx context.Context, userID, photoID string) error
	AddLiked(ctx context.Context, userID, photoID string) error
	RemoveLiked(ctx context.Context, userID, photoID string) error
	AddFavourite(ctx context.Context, userID, photoID string) error
	RemoveFavourite(ctx context.Context, userID, photoID string) error
	HasLiked(ctx context.Context, userID, photoID string) (bool, error)
	HasFavourited(ctx context.Context, userID, photoID string) (bool, error)
	// ReplaceLists overwrites all three photo lists at once.
	ReplaceLists(ctx context.Context, userID string, owned, liked, favourites []string) (*User, error)
	// PullPhotoRefs removes photoID from every user's liked, favourite, and
	// owned lists in a single bulk conditional update. It succeeds even when
	// no user referenced the photo.
	PullPhotoRefs(ctx context.Context, photoID string) error
}
