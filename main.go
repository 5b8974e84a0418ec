package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/photoshare/internal/config"
	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/handler"
	"github.com/msomdec/photoshare/internal/repository/memory"
	repo "github.com/msomdec/photoshare/internal/repository/mongo"
	"github.com/msomdec/photoshare/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	var (
		photos domain.PhotoRepository
		users  domain.UserRepository
	)

	switch cfg.Storage {
	case "memory":
		db := memory.New()
		photos = db.Photos()
		users = db.Users()
		slog.Warn("using in-memory storage; all data is lost on restart")
	default:
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := repo.New(connectCtx, cfg.MongoURI, cfg.MongoDB)
		cancel()
		if err != nil {
			slog.Error("connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close(context.Background())

		if err := db.EnsureIndexes(context.Background()); err != nil {
			slog.Error("ensure indexes", "error", err)
			os.Exit(1)
		}
		slog.Info("database indexes ensured")

		photos = db.Photos()
		users = db.Users()
	}

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	thumbnails := service.NewThumbnailDeriver(cfg.ThumbnailWidth, cfg.ThumbnailHeight)
	uploadService := service.NewUploadService(photos, users, thumbnails)
	interactionService := service.NewInteractionService(photos, users)
	queryService := service.NewPhotoQueryService(photos, cfg.PhotoListLimit, cfg.ThumbnailNameLimit, cfg.ThumbnailDescrLimit)
	userService := service.NewUserService(users)

	// Bursts of 10 auth attempts per IP, refilling one every 2 seconds.
	authLimiter := service.NewTokenBucket(0.5, 10)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, uploadService, interactionService, queryService, userService, authLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.CORS(handler.MaxBody(cfg.MaxBodyBytes, mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
