package handler_test

import (
	"net/http"
	"testing"
)

func TestUserGet_Profile(t *testing.T) {
	mux, _ := newTestServer(t)
	userID, token := signupAndSignin(t, mux, "irene")
	photoID := uploadPhoto(t, mux, token, "irene", "garden")

	res := doJSON(t, mux, http.MethodGet, "/user/irene", token, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		ID                 string   `json:"id"`
		Username           string   `json:"username"`
		PhotoList          []string `json:"photoList"`
		LikedPhotoList     []string `json:"likedPhotoList"`
		FavouritePhotoList []string `json:"favouritePhotoList"`
	}
	decodeBody(t, res, &body)

	if body.ID != userID {
		t.Fatalf("expected id %q, got %q", userID, body.ID)
	}
	if body.Username != "irene" {
		t.Fatalf("expected username irene, got %q", body.Username)
	}
	if len(body.PhotoList) != 1 || body.PhotoList[0] != photoID {
		t.Fatalf("expected photoList [%s], got %v", photoID, body.PhotoList)
	}
	if body.LikedPhotoList == nil || body.FavouritePhotoList == nil {
		t.Fatal("list fields must serialize as [], not null")
	}
}

func TestUserGet_NotFound(t *testing.T) {
	mux, _ := newTestServer(t)
	_, token := signupAndSignin(t, mux, "judy")

	res := doJSON(t, mux, http.MethodGet, "/user/nobody", token, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", res.Code, res.Body.String())
	}
}

func TestUserUpdate_DedupesLists(t *testing.T) {
	mux, _ := newTestServer(t)
	_, token := signupAndSignin(t, mux, "kevin")
	photoID := uploadPhoto(t, mux, token, "kevin", "harbour")

	res := doJSON(t, mux, http.MethodPut, "/user", token, map[string]any{
		"photoList":          []string{photoID},
		"likedPhotoList":     []string{photoID, photoID},
		"favouritePhotoList": []string{photoID, photoID, photoID},
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var body struct {
		LikedPhotoList     []string `json:"likedPhotoList"`
		FavouritePhotoList []string `json:"favouritePhotoList"`
	}
	decodeBody(t, res, &body)

	if len(body.LikedPhotoList) != 1 {
		t.Fatalf("expected liked list deduplicated to 1 entry, got %v", body.LikedPhotoList)
	}
	if len(body.FavouritePhotoList) != 1 {
		t.Fatalf("expected favourite list deduplicated to 1 entry, got %v", body.FavouritePhotoList)
	}
}

func TestUserUpdate_RequiresPhotoList(t *testing.T) {
	mux, _ := newTestServer(t)
	_, token := signupAndSignin(t, mux, "laura")

	res := doJSON(t, mux, http.MethodPut, "/user", token, map[string]any{
		"likedPhotoList":     []string{},
		"favouritePhotoList": []string{},
	})
	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 when photoList is absent, got %d: %s", res.Code, res.Body.String())
	}
}
