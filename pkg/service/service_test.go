package service_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"short-video-backend/pkg/database"
	"short-video-backend/pkg/models"
	"short-video-backend/pkg/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedUsers creates the two uploaders the filter tests pivot on: one from
// 서울/강남, one from 부산/강남.
func seedUsers(t *testing.T, db *gorm.DB) (seoul, busan models.User) {
	t.Helper()
	seoul = models.User{
		Email:         "seoul@sample.com",
		Nickname:      "seoul-uploader",
		ProfileImgURL: "https://img.sample.com/seoul.jpg",
		UserInfo: models.UserInfo{
			Age:      25,
			City:     "서울",
			District: "강남",
			Gender:   models.GenderFemale,
		},
	}
	busan = models.User{
		Email:         "busan@sample.com",
		Nickname:      "busan-uploader",
		ProfileImgURL: "https://img.sample.com/busan.jpg",
		UserInfo: models.UserInfo{
			Age:      31,
			City:     "부산",
			District: "강남",
			Gender:   models.GenderMale,
		},
	}
	require.NoError(t, db.Create(&seoul).Error)
	require.NoError(t, db.Create(&busan).Error)
	return seoul, busan
}

func seedVideo(t *testing.T, db *gorm.DB, uploader models.User, title string, categories ...string) models.Video {
	t.Helper()
	video := models.Video{
		Title:       title,
		Content:     "content of " + title,
		VideoType:   models.VideoTypeEmbed,
		VideoURL:    "https://www.youtube.com/watch?v=" + title,
		UploaderIdx: uploader.Idx,
	}
	require.NoError(t, db.Create(&video).Error)
	for _, name := range categories {
		var category models.Category
		err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error
		require.NoError(t, err)
		require.NoError(t, repository.NewVideoCategories(db).Attach(video.Idx, category.Idx))
	}
	return video
}

func strp(s string) *string {
	return &s
}
