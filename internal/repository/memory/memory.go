// Package memory provides in-process implementations of the domain
// repositories. They mirror the atomic semantics of the mongo backend
// (counter increments, set-membership list updates, bulk reference pulls)
// and back the unit tests and the development mode.
package memory

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/msomdec/photoshare/internal/domain"
)

// DB holds the in-memory collections and hands out repositories over them.
type DB struct {
	photos *PhotoRepository
	users  *UserRepository
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{
		photos: &PhotoRepository{photos: map[string]*domain.Photo{}},
		users:  &UserRepository{users: map[string]*domain.User{}},
	}
}

// Photos returns the photo repository.
func (d *DB) Photos() domain.PhotoRepository { return d.photos }

// Users returns the user repository.
func (d *DB) Users() domain.UserRepository { return d.users }

// newID returns a random 24-char hex id, the same shape mongo object ids
// serialize to.
func newID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
