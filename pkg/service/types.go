package service

import (
	"time"

	"short-video-backend/pkg/models"
)

// VideoFilterRequest narrows the video collection. Every field is optional;
// a nil field applies no narrowing.
type VideoFilterRequest struct {
	Category1 *string `json:"category1"`
	Category2 *string `json:"category2"`
	Category3 *string `json:"category3"`
	Gender    *string `json:"gender"`
	City      *string `json:"city"`
	District  *string `json:"district"`
}

// categorySet collects the non-null requested categories, 0 to 3 entries.
func (r VideoFilterRequest) categorySet() []string {
	var categories []string
	for _, c := range []*string{r.Category1, r.Category2, r.Category3} {
		if c != nil {
			categories = append(categories, *c)
		}
	}
	return categories
}

type VideoUploadDto struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Email     string `json:"email" binding:"required"`
	VideoURL  string `json:"videoUrl"`
	ThumbURL  string `json:"thumbUrl"`
	VideoType string `json:"videoType"`
}

// ResponseVideoInfo is the flat outward summary of a stored video plus its
// uploader's public profile.
type ResponseVideoInfo struct {
	Idx           int64            `json:"idx"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	VideoType     models.VideoType `json:"videoType"`
	VideoURL      string           `json:"videoUrl"`
	ThumbnailURL  string           `json:"thumbnailUrl"`
	Hits          int64            `json:"hits"`
	CreatedDate   time.Time        `json:"createdDate"`
	UpdatedDate   time.Time        `json:"updatedDate"`
	Nickname      string           `json:"nickname"`
	ProfileImgURL string           `json:"profileImgUrl"`
}

type SignInResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
