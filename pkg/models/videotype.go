package models

import (
	"github.com/pkg/errors"
)

// VideoType is the closed set of media sources a video can have.
type VideoType string

const (
	// VideoTypeEmbed references an externally hosted video.
	VideoTypeEmbed VideoType = "EMBED"
	// VideoTypeDirect references a file uploaded to object storage.
	VideoTypeDirect VideoType = "DIRECT"
)

var ErrInvalidVideoType = errors.New("invalid video type")

// ParseVideoType converts the wire string into a VideoType, rejecting
// anything outside the closed set.
func ParseVideoType(s string) (VideoType, error) {
	switch VideoType(s) {
	case VideoTypeEmbed:
		return VideoTypeEmbed, nil
	case VideoTypeDirect:
		return VideoTypeDirect, nil
	default:
		return "", errors.Wrapf(ErrInvalidVideoType, "%q", s)
	}
}
