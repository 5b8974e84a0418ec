package service

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/msomdec/photoshare/internal/domain"
)

const (
	maxPhotoNameLen  = 100
	maxPhotoDescrLen = 500
)

// UploadService runs the photo submission pipeline: validate, derive the
// thumbnail, create the photo record, append the id to the owner's list.
type UploadService struct {
	photos domain.PhotoRepository
	users  domain.UserRepository
	thumbs *ThumbnailDeriver
}

// NewUploadService creates a new UploadService.
func NewUploadService(photos domain.PhotoRepository, users domain.UserRepository, thumbs *ThumbnailDeriver) *UploadService {
	return &UploadService{photos: photos, users: users, thumbs: thumbs}
}

// Submit stores a new photo for ownerUsername and returns its id.
//
// Thumbnail derivation happens before anything is persisted, so a decode
// failure leaves no state behind. If the photo record is created but the
// owner reference append fails, a compensating delete of the fresh record is
// attempted; if that also fails the photo is orphaned and the error reports
// a partial failure.
func (s *UploadService) Submit(ctx context.Context, ownerUsername, imageBase64, name, description string) (string, error) {
	if imageBase64 == "" || name == "" {
		return "", fmt.Errorf("%w: image and name are required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxPhotoNameLen {
		return "", fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidInput, maxPhotoNameLen)
	}
	if utf8.RuneCountInString(description) > maxPhotoDescrLen {
		return "", fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidInput, maxPhotoDescrLen)
	}

	owner, err := s.users.GetByUsername(ctx, ownerUsername)
	if err != nil {
		return "", fmt.Errorf("resolve owner: %w", err)
	}

	thumbnail, err := s.thumbs.Derive(imageBase64)
	if err != nil {
		return "", fmt.Errorf("derive thumbnail: %w", err)
	}

	photo := &domain.Photo{
		Base64:    imageBase64,
		Thumbnail: thumbnail,
		Name:      name,
		Descr:     description,
		Likes:     0,
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}

	if err := s.users.AppendOwnedPhoto(ctx, owner.ID, photo.ID); err != nil {
		// Best-effort compensation: remove the record nobody owns.
		if delErr := s.photos.Delete(ctx, photo.ID); delErr != nil {
			slog.Error("compensating photo delete failed", "photoID", photo.ID, "error", delErr)
			return "", fmt.Errorf("%w: photo %s created but not referenced: %v", domain.ErrPartialFailure, photo.ID, err)
		}
		return "", fmt.Errorf("append owned photo: %w", err)
	}

	return photo.ID, nil
}
