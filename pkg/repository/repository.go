// Package repository holds the accessor contracts between the services and
// the relational store. Services never touch gorm queries directly; they go
// through these interfaces so the filter engine can be exercised against an
// in-memory store in tests.
package repository

import (
	"github.com/pkg/errors"

	"short-video-backend/pkg/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrVideoNotFound = errors.New("video not found")
)

// CandidatePool is the working set of videos handed to the filter engine.
// NoCandidates marks a category filter that matched no membership rows,
// which is distinct from a pool that narrows down to nothing.
type CandidatePool struct {
	Videos       []models.Video
	NoCandidates bool
}

type Users interface {
	FindByEmail(email string) (*models.User, error)
	Save(user *models.User) error
}

type Videos interface {
	FindAll() ([]models.Video, error)
	FindByIdx(idx int64) (*models.Video, error)
	PageAfter(lastIdx int64, size int) ([]models.Video, error)
	Save(video *models.Video) error
	IncrementHits(idx int64) error
	Delete(idx int64) error
}

type VideoCategories interface {
	FindDistinctVideoInCategories(names []string) (CandidatePool, error)
	Attach(videoIdx, categoryIdx int64) error
	DeleteByVideo(videoIdx int64) error
}
