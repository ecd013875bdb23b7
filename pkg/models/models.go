package models

import (
	"time"
)

// UserInfo carries the profile attributes consulted by video filtering.
type UserInfo struct {
	Age      int64  `json:"age"`
	City     string `json:"city"`
	District string `json:"district"`
	Gender   string `json:"gender"`
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type User struct {
	Idx           int64     `gorm:"primary_key" json:"idx"`
	Email         string    `gorm:"unique_index;not null" json:"email"`
	Password      string    `json:"-"`
	Nickname      string    `json:"nickname"`
	ProfileImgURL string    `json:"profileImgUrl"`
	UserInfo      UserInfo  `gorm:"embedded" json:"userInfo"`
	Videos        []Video   `gorm:"foreignkey:UploaderIdx" json:"-"`
	CreatedAt     time.Time `json:"createdDate"`
	UpdatedAt     time.Time `json:"updatedDate"`
}

type Video struct {
	Idx          int64     `gorm:"primary_key" json:"idx"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	VideoType    VideoType `gorm:"type:varchar(16);not null" json:"videoType"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Hits         int64     `json:"hits"`
	UploaderIdx  int64     `gorm:"not null;index" json:"-"`
	Uploader     User      `gorm:"foreignkey:UploaderIdx;association_foreignkey:Idx" json:"-"`
	CreatedAt    time.Time `json:"createdDate"`
	UpdatedAt    time.Time `json:"updatedDate"`
}

type Category struct {
	Idx  int64  `gorm:"primary_key" json:"idx"`
	Name string `gorm:"unique_index;not null" json:"name"`
}

// VideoCategory is the join row between a video and one of its categories.
type VideoCategory struct {
	Idx         int64 `gorm:"primary_key" json:"idx"`
	VideoIdx    int64 `gorm:"not null;index" json:"videoIdx"`
	CategoryIdx int64 `gorm:"not null;index" json:"categoryIdx"`
}
