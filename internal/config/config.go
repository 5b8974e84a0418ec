package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all runtime configuration. Values are read from the
// environment once at startup and passed into constructors; nothing in the
// application reads the environment after that.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"photoshare"`
	// Storage selects the repository backend: "mongo" or "memory".
	// The memory backend keeps everything in-process and is for development.
	Storage string `env:"STORAGE" envDefault:"mongo"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	ThumbnailWidth  int `env:"THUMBNAIL_WIDTH" envDefault:"350"`
	ThumbnailHeight int `env:"THUMBNAIL_HEIGHT" envDefault:"350"`

	// PhotoListLimit caps the recent / most-liked listings.
	PhotoListLimit int `env:"PHOTO_LIST_LIMIT" envDefault:"50"`

	// Truncation bounds for the thumbnail projection text fields.
	ThumbnailNameLimit  int `env:"THUMBNAIL_NAME_LIMIT" envDefault:"60"`
	ThumbnailDescrLimit int `env:"THUMBNAIL_DESCR_LIMIT" envDefault:"120"`

	// MaxBodyBytes bounds JSON request bodies; uploads carry inline base64.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"20971520"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}
	return cfg, nil
}
