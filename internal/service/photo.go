package service

import (
	"context"
	"fmt"

	"github.com/msomdec/photoshare/internal/domain"
)

// PhotoQueryService serves the read-only photo projections.
type PhotoQueryService struct {
	photos     domain.PhotoRepository
	listLimit  int
	nameLimit  int
	descrLimit int
}

// NewPhotoQueryService creates a query service. listLimit caps the recent
// and most-liked listings; nameLimit and descrLimit bound the text fields of
// the thumbnail projection.
func NewPhotoQueryService(photos domain.PhotoRepository, listLimit, nameLimit, descrLimit int) *PhotoQueryService {
	return &PhotoQueryService{
		photos:     photos,
		listLimit:  listLimit,
		nameLimit:  nameLimit,
		descrLimit: descrLimit,
	}
}

// RecentIDs returns photo ids, most recently uploaded first.
func (s *PhotoQueryService) RecentIDs(ctx context.Context) ([]string, error) {
	ids, err := s.photos.ListRecentIDs(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent photos: %w", err)
	}
	return ids, nil
}

// MostLikedIDs returns photo ids ordered by like count descending.
func (s *PhotoQueryService) MostLikedIDs(ctx context.Context) ([]string, error) {
	ids, err := s.photos.ListMostLikedIDs(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list most liked photos: %w", err)
	}
	return ids, nil
}

// Summary returns the full-size projection of one photo.
func (s *PhotoQueryService) Summary(ctx context.Context, id string) (*domain.PhotoSummary, error) {
	return s.photos.GetSummary(ctx, id)
}

// Thumbnail returns the gallery projection of one photo with its text
// fields truncated to the configured bounds.
func (s *PhotoQueryService) Thumbnail(ctx context.Context, id string) (*domain.PhotoThumbnail, error) {
	thumb, err := s.photos.GetThumbnail(ctx, id)
	if err != nil {
		return nil, err
	}
	thumb.Name = truncate(thumb.Name, s.nameLimit)
	thumb.Descr = truncate(thumb.Descr, s.descrLimit)
	return thumb, nil
}

// truncate bounds s to limit characters, appending an ellipsis marker when
// anything was cut off.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + " ..."
}
