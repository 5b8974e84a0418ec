package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/photoshare/internal/domain"
)

// InteractionService owns every invariant that spans the photo and user
// collections: like toggles (counter plus membership), favourite toggles,
// and cascading reference cleanup on photo deletion. Neither repository
// ever reaches into the other; all cross-entity writes go through here.
type InteractionService struct {
	photos domain.PhotoRepository
	users  domain.UserRepository
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(photos domain.PhotoRepository, users domain.UserRepository) *InteractionService {
	return &InteractionService{photos: photos, users: users}
}

// ToggleLike applies a like (+1) or unlike (-1) from user to photo.
//
// The photo counter is updated first with an atomic increment; if that fails
// the user document is never touched. If the counter committed but the
// membership update fails the two are out of sync, which is reported as
// ErrPartialFailure so the caller can retry the user-side update alone.
//
// Toggles that would not change membership (liking an already-liked photo,
// unliking one never liked) are no-ops, keeping the counter honest when a
// client repeats a request.
func (s *InteractionService) ToggleLike(ctx context.Context, photoID, userID string, direction int) error {
	if direction != 1 && direction != -1 {
		return fmt.Errorf("%w: like change must be +1 or -1", domain.ErrInvalidInput)
	}

	liked, err := s.users.HasLiked(ctx, userID, photoID)
	if err != nil {
		return fmt.Errorf("check like membership: %w", err)
	}
	if liked == (direction == 1) {
		return nil
	}

	if err := s.photos.IncrementLikes(ctx, photoID, direction); err != nil {
		return fmt.Errorf("update like count: %w", err)
	}

	if direction == 1 {
		err = s.users.AddLiked(ctx, userID, photoID)
	} else {
		err = s.users.RemoveLiked(ctx, userID, photoID)
	}
	if err != nil {
		return fmt.Errorf("%w: like count updated but user list was not: %v", domain.ErrPartialFailure, err)
	}
	return nil
}

// ToggleFavourite applies a favourite (+1) or unfavourite (-1) from user to
// photo. Only the user document is written, so there is no two-phase
// ordering concern. Membership has set semantics: repeated adds keep the id
// exactly once.
func (s *InteractionService) ToggleFavourite(ctx context.Context, photoID, userID string, direction int) error {
	if direction != 1 && direction != -1 {
		return fmt.Errorf("%w: favourite change must be +1 or -1", domain.ErrInvalidInput)
	}

	if direction == 1 {
		// Never add a reference to a photo that is already gone. Removal is
		// always allowed so stale references can be cleaned up.
		if _, err := s.photos.GetThumbnail(ctx, photoID); err != nil {
			return fmt.Errorf("resolve photo: %w", err)
		}
		if err := s.users.AddFavourite(ctx, userID, photoID); err != nil {
			return fmt.Errorf("add favourite: %w", err)
		}
		return nil
	}

	if err := s.users.RemoveFavourite(ctx, userID, photoID); err != nil {
		return fmt.Errorf("remove favourite: %w", err)
	}
	return nil
}

// CascadeDelete removes a photo and strips its id from every user's lists.
// Reference cleanup runs before the photo record is removed; if cleanup
// partially fails, read paths already tolerate dangling ids by treating a
// missing photo as absent.
func (s *InteractionService) CascadeDelete(ctx context.Context, photoID string) error {
	if _, err := s.photos.GetThumbnail(ctx, photoID); err != nil {
		return fmt.Errorf("resolve photo: %w", err)
	}

	if err := s.users.PullPhotoRefs(ctx, photoID); err != nil {
		return fmt.Errorf("pull photo references: %w", err)
	}

	if err := s.photos.Delete(ctx, photoID); err != nil {
		// A concurrent delete finishing first leaves nothing to do.
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
