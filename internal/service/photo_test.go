package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/msomdec/photoshare/internal/domain"
	"github.com/msomdec/photoshare/internal/repository/memory"
	"github.com/msomdec/photoshare/internal/service"
)

func TestPhotoQueryService_RecentIDs(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	first := seedPhoto(t, db, "first")
	second := seedPhoto(t, db, "second")
	third := seedPhoto(t, db, "third")

	queries := service.NewPhotoQueryService(db.Photos(), 50, 60, 120)
	ids, err := queries.RecentIDs(ctx)
	if err != nil {
		t.Fatalf("RecentIDs: %v", err)
	}

	want := []string{third.ID, second.ID, first.ID}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestPhotoQueryService_RecentIDs_Limit(t *testing.T) {
	db := memory.New()
	for i := 0; i < 5; i++ {
		seedPhoto(t, db, "p")
	}

	queries := service.NewPhotoQueryService(db.Photos(), 3, 60, 120)
	ids, err := queries.RecentIDs(context.Background())
	if err != nil {
		t.Fatalf("RecentIDs: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected the limit of 3 ids, got %d", len(ids))
	}
}

func TestPhotoQueryService_MostLikedIDs(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	cold := seedPhoto(t, db, "cold")
	warm := seedPhoto(t, db, "warm")
	hot := seedPhoto(t, db, "hot")

	if err := db.Photos().IncrementLikes(ctx, warm.ID, 2); err != nil {
		t.Fatalf("IncrementLikes: %v", err)
	}
	if err := db.Photos().IncrementLikes(ctx, hot.ID, 5); err != nil {
		t.Fatalf("IncrementLikes: %v", err)
	}

	queries := service.NewPhotoQueryService(db.Photos(), 50, 60, 120)
	ids, err := queries.MostLikedIDs(ctx)
	if err != nil {
		t.Fatalf("MostLikedIDs: %v", err)
	}

	want := []string{hot.ID, warm.ID, cold.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestPhotoQueryService_Thumbnail_Truncation(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	tests := []struct {
		name      string
		photoName string
		descr     string
		wantName  string
		wantDescr string
	}{
		{
			"short fields untouched",
			"holiday", "a short note",
			"holiday", "a short note",
		},
		{
			"exactly at the bound untouched",
			strings.Repeat("n", 60), strings.Repeat("d", 120),
			strings.Repeat("n", 60), strings.Repeat("d", 120),
		},
		{
			"long fields ellipsized",
			strings.Repeat("n", 80), strings.Repeat("d", 150),
			strings.Repeat("n", 60) + " ...", strings.Repeat("d", 120) + " ...",
		},
	}

	queries := service.NewPhotoQueryService(db.Photos(), 50, 60, 120)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			photo := &domain.Photo{Name: tc.photoName, Descr: tc.descr}
			if err := db.Photos().Create(ctx, photo); err != nil {
				t.Fatalf("create photo: %v", err)
			}

			thumb, err := queries.Thumbnail(ctx, photo.ID)
			if err != nil {
				t.Fatalf("Thumbnail: %v", err)
			}
			if thumb.Name != tc.wantName {
				t.Fatalf("expected name %q, got %q", tc.wantName, thumb.Name)
			}
			if thumb.Descr != tc.wantDescr {
				t.Fatalf("expected description %q, got %q", tc.wantDescr, thumb.Descr)
			}
		})
	}
}
