package handler

import "github.com/msomdec/photoshare/internal/domain"

// UserDTO is the JSON representation of a user. The credential hash is
// never serialized.
type UserDTO struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	PhotoList          []string `json:"photoList"`
	LikedPhotoList     []string `json:"likedPhotoList"`
	FavouritePhotoList []string `json:"favouritePhotoList"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:                 u.ID,
		Username:           u.Username,
		PhotoList:          emptyIfNil(u.OwnedPhotos),
		LikedPhotoList:     emptyIfNil(u.LikedPhotos),
		FavouritePhotoList: emptyIfNil(u.FavouritePhotos),
	}
}

// PhotoSummaryDTO is the JSON representation of the photo detail view.
type PhotoSummaryDTO struct {
	ID          string `json:"id"`
	Base64      string `json:"base64"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Likes       int    `json:"likes"`
}

func toPhotoSummaryDTO(p *domain.PhotoSummary) PhotoSummaryDTO {
	return PhotoSummaryDTO{
		ID:          p.ID,
		Base64:      p.Base64,
		Name:        p.Name,
		Description: p.Descr,
		Likes:       p.Likes,
	}
}

// PhotoThumbnailDTO is the JSON representation of a gallery tile.
type PhotoThumbnailDTO struct {
	Base64Thumbnail string `json:"base64Thumbnail"`
	Name            string `json:"name"`
	Description     string `json:"description"`
}

func toPhotoThumbnailDTO(p *domain.PhotoThumbnail) PhotoThumbnailDTO {
	return PhotoThumbnailDTO{
		Base64Thumbnail: p.Thumbnail,
		Name:            p.Name,
		Description:     p.Descr,
	}
}

// PhotoInfoDTO pairs a photo id with its position in an ordered listing.
type PhotoInfoDTO struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

func toPhotoInfoDTOs(ids []string) []PhotoInfoDTO {
	dtos := make([]PhotoInfoDTO, len(ids))
	for i, id := range ids {
		dtos[i] = PhotoInfoDTO{ID: id, Index: i}
	}
	return dtos
}

// emptyIfNil keeps list fields serializing as [] rather than null.
func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
