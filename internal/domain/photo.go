package domain

import "context"

// Photo represents an uploaded photo. Image payloads are stored as data URIs
// ("data:image/png;base64,..."), the format the frontend uploads and renders.
type Photo struct {
	ID        string
	Base64    string
	Thumbnail string
	Name      string
	Descr     string
	Likes     int
}

// PhotoSummary is the read projection served for the photo detail view.
// The thumbnail payload is deliberately absent.
type PhotoSummary struct {
	ID     string
	Base64 string
	Name   string
	Descr  string
	Likes  int
}

// PhotoThumbnail is the read projection served for gallery tiles.
type PhotoThumbnail struct {
	ID        string
	Thumbnail string
	Name      string
	Descr     string
}

// PhotoRepository defines persistence operations for photos.
//
// IncrementLikes must be atomic on the store side (never read-modify-write)
// and must refuse to take the counter below zero.
type PhotoRepository interface {
	Create(ctx context.Context, photo *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	GetSummary(ctx context.Context, id string) (*PhotoSummary, error)
	GetThumbnail(ctx context.Context, id string) (*PhotoThumbnail, error)
	// ListRecentIDs returns up to limit photo ids, most recently created first.
	ListRecentIDs(ctx context.Context, limit int) ([]string, error)
	// ListMostLikedIDs returns up to limit photo ids ordered by like count
	// descending, ties broken by storage order.
	ListMostLikedIDs(ctx context.Context, limit int) ([]string, error)
	IncrementLikes(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}
