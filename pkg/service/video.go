package service

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"short-video-backend/pkg/database"
	"short-video-backend/pkg/models"
	"short-video-backend/pkg/repository"
)

// ErrDataIntegrity marks a stored record that violates an invariant, such as
// a video without an uploader.
var ErrDataIntegrity = errors.New("data integrity violation")

// VideoService owns listing, filtering, assembly, and the upload/delete
// write paths.
type VideoService struct {
	db              *gorm.DB
	users           repository.Users
	videos          repository.Videos
	videoCategories repository.VideoCategories
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{
		db:              db,
		users:           repository.NewUsers(db),
		videos:          repository.NewVideos(db),
		videoCategories: repository.NewVideoCategories(db),
	}
}

// Summary maps a video plus its uploader's profile into the outward record.
func (s *VideoService) Summary(v *models.Video) (ResponseVideoInfo, error) {
	if v.Uploader.Idx == 0 {
		return ResponseVideoInfo{}, errors.Wrapf(ErrDataIntegrity, "video %d has no uploader", v.Idx)
	}
	return ResponseVideoInfo{
		Idx:           v.Idx,
		Title:         v.Title,
		Content:       v.Content,
		VideoType:     v.VideoType,
		VideoURL:      v.VideoURL,
		ThumbnailURL:  v.ThumbnailURL,
		Hits:          v.Hits,
		CreatedDate:   v.CreatedAt,
		UpdatedDate:   v.UpdatedAt,
		Nickname:      v.Uploader.Nickname,
		ProfileImgURL: v.Uploader.ProfileImgURL,
	}, nil
}

func (s *VideoService) summaries(videos []models.Video) ([]ResponseVideoInfo, error) {
	out := make([]ResponseVideoInfo, 0, len(videos))
	for i := range videos {
		info, err := s.Summary(&videos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *VideoService) AllVideos() ([]ResponseVideoInfo, error) {
	videos, err := s.videos.FindAll()
	if err != nil {
		return nil, err
	}
	return s.summaries(videos)
}

// VideoByIdx returns one video's summary and counts the view.
func (s *VideoService) VideoByIdx(idx int64) (ResponseVideoInfo, error) {
	var info ResponseVideoInfo
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		videos := repository.NewVideos(tx)
		if err := videos.IncrementHits(idx); err != nil {
			return err
		}
		video, err := videos.FindByIdx(idx)
		if err != nil {
			return err
		}
		info, err = s.Summary(video)
		return err
	})
	return info, err
}

// PageAfter returns at most size summaries whose ids are ordered after the
// cursor.
func (s *VideoService) PageAfter(lastVideoIdx int64, size int) ([]ResponseVideoInfo, error) {
	videos, err := s.videos.PageAfter(lastVideoIdx, size)
	if err != nil {
		return nil, err
	}
	return s.summaries(videos)
}

// Filter applies category membership and then gender/city/district narrowing
// against each candidate's uploader profile.
//
// The category set is an OR: a video in any requested category is a
// candidate, once. District is only consulted when city is requested and
// matches the uploader's city.
func (s *VideoService) Filter(req VideoFilterRequest) ([]ResponseVideoInfo, error) {
	categories := req.categorySet()

	var pool repository.CandidatePool
	if len(categories) == 0 {
		videos, err := s.videos.FindAll()
		if err != nil {
			return nil, err
		}
		pool = repository.CandidatePool{Videos: videos}
	} else {
		var err error
		pool, err = s.videoCategories.FindDistinctVideoInCategories(categories)
		if err != nil {
			return nil, err
		}
	}

	if pool.NoCandidates {
		logrus.WithField("categories", categories).Debug("category filter matched no videos")
		return []ResponseVideoInfo{}, nil
	}

	filtered := make([]models.Video, 0, len(pool.Videos))
	for i := range pool.Videos {
		v := &pool.Videos[i]
		info := v.Uploader.UserInfo
		if req.Gender != nil && *req.Gender != info.Gender {
			continue
		}
		if req.City != nil && *req.City != info.City {
			continue
		}
		if req.City != nil && *req.City == info.City {
			if req.District != nil && *req.District != info.District {
				continue
			}
		}
		filtered = append(filtered, *v)
	}
	return s.summaries(filtered)
}

// SaveUpload resolves the uploader by email and persists a new video with a
// zero view count, all inside one transaction. An unknown email leaves
// nothing behind.
func (s *VideoService) SaveUpload(dto VideoUploadDto) (ResponseVideoInfo, error) {
	videoType, err := models.ParseVideoType(dto.VideoType)
	if err != nil {
		return ResponseVideoInfo{}, err
	}

	var info ResponseVideoInfo
	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		uploader, err := repository.NewUsers(tx).FindByEmail(dto.Email)
		if err != nil {
			return err
		}
		video := &models.Video{
			Title:        dto.Title,
			Content:      dto.Content,
			VideoType:    videoType,
			VideoURL:     dto.VideoURL,
			ThumbnailURL: dto.ThumbURL,
			Hits:         0,
			UploaderIdx:  uploader.Idx,
		}
		if err := repository.NewVideos(tx).Save(video); err != nil {
			return err
		}
		video.Uploader = *uploader
		info, err = s.Summary(video)
		return err
	})
	return info, err
}

// DeleteVideo removes the video and its category memberships.
func (s *VideoService) DeleteVideo(idx int64) error {
	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		videos := repository.NewVideos(tx)
		if _, err := videos.FindByIdx(idx); err != nil {
			return err
		}
		if err := repository.NewVideoCategories(tx).DeleteByVideo(idx); err != nil {
			return err
		}
		return videos.Delete(idx)
	})
}
