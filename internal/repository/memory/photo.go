package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/msomdec/photoshare/internal/domain"
)

// PhotoRepository implements domain.PhotoRepository in memory.
type PhotoRepository struct {
	mu     sync.Mutex
	photos map[string]*domain.Photo
	// order records insertion order; most recent last.
	order []string
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *photo
	p.ID = newID()
	r.photos[p.ID] = &p
	r.order = append(r.order, p.ID)
	photo.ID = p.ID
	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.photos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PhotoRepository) GetSummary(ctx context.Context, id string) (*domain.PhotoSummary, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.PhotoSummary{
		ID:     p.ID,
		Base64: p.Base64,
		Name:   p.Name,
		Descr:  p.Descr,
		Likes:  p.Likes,
	}, nil
}

func (r *PhotoRepository) GetThumbnail(ctx context.Context, id string) (*domain.PhotoThumbnail, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.PhotoThumbnail{
		ID:        p.ID,
		Thumbnail: p.Thumbnail,
		Name:      p.Name,
		Descr:     p.Descr,
	}, nil
}

func (r *PhotoRepository) ListRecentIDs(ctx context.Context, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := []string{}
	for i := len(r.order) - 1; i >= 0 && len(ids) < limit; i-- {
		ids = append(ids, r.order[i])
	}
	return ids, nil
}

func (r *PhotoRepository) ListMostLikedIDs(ctx context.Context, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	// Stable sort keeps insertion order for equal like counts.
	sort.SliceStable(ids, func(i, j int) bool {
		return r.photos[ids[i]].Likes > r.photos[ids[j]].Likes
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *PhotoRepository) IncrementLikes(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.photos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if next := p.Likes + delta; next >= 0 {
		p.Likes = next
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.photos, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
