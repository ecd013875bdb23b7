package repository

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"short-video-backend/pkg/models"
)

type gormUsers struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (r *gormUsers) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

func (r *gormUsers) Save(user *models.User) error {
	return errors.Wrap(r.db.Save(user).Error, "save user")
}

type gormVideos struct {
	db *gorm.DB
}

func NewVideos(db *gorm.DB) Videos {
	return &gormVideos{db: db}
}

func (r *gormVideos) FindAll() ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Preload("Uploader").Order("idx").Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "find all videos")
	}
	return videos, nil
}

func (r *gormVideos) FindByIdx(idx int64) (*models.Video, error) {
	var video models.Video
	if err := r.db.Preload("Uploader").Where("idx = ?", idx).First(&video).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVideoNotFound
		}
		return nil, errors.Wrap(err, "find video by idx")
	}
	return &video, nil
}

func (r *gormVideos) PageAfter(lastIdx int64, size int) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Preload("Uploader").
		Where("idx > ?", lastIdx).
		Order("idx").
		Limit(size).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "page videos")
	}
	return videos, nil
}

func (r *gormVideos) Save(video *models.Video) error {
	return errors.Wrap(r.db.Save(video).Error, "save video")
}

// IncrementHits bumps the view counter in the store; the counter only ever
// grows.
func (r *gormVideos) IncrementHits(idx int64) error {
	err := r.db.Model(&models.Video{}).
		Where("idx = ?", idx).
		Update("hits", gorm.Expr("hits + 1")).Error
	return errors.Wrap(err, "increment hits")
}

func (r *gormVideos) Delete(idx int64) error {
	return errors.Wrap(r.db.Where("idx = ?", idx).Delete(&models.Video{}).Error, "delete video")
}

type gormVideoCategories struct {
	db *gorm.DB
}

func NewVideoCategories(db *gorm.DB) VideoCategories {
	return &gormVideoCategories{db: db}
}

// FindDistinctVideoInCategories returns the videos belonging to any of the
// named categories. A video in two requested categories appears once.
func (r *gormVideoCategories) FindDistinctVideoInCategories(names []string) (CandidatePool, error) {
	var videos []models.Video
	err := r.db.Preload("Uploader").
		Select("videos.*").
		Joins("JOIN video_categories ON video_categories.video_idx = videos.idx").
		Joins("JOIN categories ON categories.idx = video_categories.category_idx").
		Where("categories.name IN (?)", names).
		Group("videos.idx").
		Order("videos.idx").
		Find(&videos).Error
	if err != nil {
		return CandidatePool{}, errors.Wrap(err, "find videos in categories")
	}
	if len(videos) == 0 {
		return CandidatePool{NoCandidates: true}, nil
	}
	return CandidatePool{Videos: videos}, nil
}

func (r *gormVideoCategories) Attach(videoIdx, categoryIdx int64) error {
	row := models.VideoCategory{VideoIdx: videoIdx, CategoryIdx: categoryIdx}
	return errors.Wrap(r.db.Create(&row).Error, "attach video category")
}

func (r *gormVideoCategories) DeleteByVideo(videoIdx int64) error {
	err := r.db.Where("video_idx = ?", videoIdx).Delete(&models.VideoCategory{}).Error
	return errors.Wrap(err, "delete video categories")
}
