package service

import (
	"context"
	"fmt"

	"github.com/msomdec/photoshare/internal/domain"
)

// UserService serves user profile reads and the legacy whole-list update.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByUsername returns the user's profile.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// ReplaceLists overwrites a user's three photo lists at once. The liked and
// favourite lists are sets, so duplicates a client may send are dropped here
// rather than stored; the owned list keeps its order untouched.
//
// Clients should prefer the per-photo toggle operations; this whole-list
// replacement exists for older frontends and loses concurrent updates from
// other sessions of the same user (last write wins).
func (s *UserService) ReplaceLists(ctx context.Context, userID string, owned, liked, favourites []string) (*domain.User, error) {
	if owned == nil {
		return nil, fmt.Errorf("%w: photo list is required", domain.ErrInvalidInput)
	}

	user, err := s.users.ReplaceLists(ctx, userID, owned, dedupe(liked), dedupe(favourites))
	if err != nil {
		return nil, fmt.Errorf("replace lists: %w", err)
	}
	return user, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
