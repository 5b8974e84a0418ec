package memory

import (
	"context"
	"sync"

	"github.com/msomdec/photoshare/internal/domain"
)

// UserRepository implements domain.UserRepository in memory.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}

	u := *user
	u.ID = newID()
	u.OwnedPhotos = []string{}
	u.LikedPhotos = []string{}
	u.FavouritePhotos = []string{}
	r.users[u.ID] = &u

	user.ID = u.ID
	user.OwnedPhotos = []string{}
	user.LikedPhotos = []string{}
	user.FavouritePhotos = []string{}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) AppendOwnedPhoto(ctx context.Context, userID, photoID string) error {
	return r.update(userID, func(u *domain.User) {
		u.OwnedPhotos = append(u.OwnedPhotos, photoID)
	})
}

func (r *UserRepository) AddLiked(ctx context.Context, userID, photoID string) error {
	return r.update(userID, func(u *domain.User) {
		u.LikedPhotos = addToSet(u.LikedPhotos, photoID)
	})
}

func (r *UserRepository) RemoveLiked(ctx context.Context, userID, photoID string) error {
	return r.update(userID, func(u *domain.User) {
		u.LikedPhotos = removeAll(u.LikedPhotos, photoID)
	})
}

func (r *UserRepository) AddFavourite(ctx context.Context, userID, photoID string) error {
	return r.update(userID, func(u *domain.User) {
		u.FavouritePhotos = addToSet(u.FavouritePhotos, photoID)
	})
}

func (r *UserRepository) RemoveFavourite(ctx context.Context, userID, photoID string) error {
	return r.update(userID, func(u *domain.User) {
		u.FavouritePhotos = removeAll(u.FavouritePhotos, photoID)
	})
}

func (r *UserRepository) update(userID string, fn func(*domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	fn(u)
	return nil
}

func (r *UserRepository) HasLiked(ctx context.Context, userID, photoID string) (bool, error) {
	return r.hasRef(userID, photoID, func(u *domain.User) []string { return u.LikedPhotos })
}

func (r *UserRepository) HasFavourited(ctx context.Context, userID, photoID string) (bool, error) {
	return r.hasRef(userID, photoID, func(u *domain.User) []string { return u.FavouritePhotos })
}

func (r *UserRepository) hasRef(userID, photoID string, list func(*domain.User) []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return false, domain.ErrNotFound
	}
	for _, id := range list(u) {
		if id == photoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) ReplaceLists(ctx context.Context, userID string, owned, liked, favourites []string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.OwnedPhotos = append([]string{}, owned...)
	u.LikedPhotos = append([]string{}, liked...)
	u.FavouritePhotos = append([]string{}, favourites...)
	return copyUser(u), nil
}

func (r *UserRepository) PullPhotoRefs(ctx context.Context, photoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		u.OwnedPhotos = removeAll(u.OwnedPhotos, photoID)
		u.LikedPhotos = removeAll(u.LikedPhotos, photoID)
		u.FavouritePhotos = removeAll(u.FavouritePhotos, photoID)
	}
	return nil
}

func copyUser(u *domain.User) *domain.User {
	cp := *u
	cp.OwnedPhotos = append([]string{}, u.OwnedPhotos...)
	cp.LikedPhotos = append([]string{}, u.LikedPhotos...)
	cp.FavouritePhotos = append([]string{}, u.FavouritePhotos...)
	return &cp
}

func addToSet(list []string, id string) []string {
	for _, other := range list {
		if other == id {
			return list
		}
	}
	return append(list, id)
}

func removeAll(list []string, id string) []string {
	out := list[:0]
	for _, other := range list {
		if other != id {
			out = append(out, other)
		}
	}
	return out
}
