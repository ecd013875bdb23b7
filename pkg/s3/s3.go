package s3

import (
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"short-video-backend/cmd/config"
)

// Bucket path prefixes for the two kinds of uploaded media.
const (
	PrefixShortVideo     = "short-video"
	PrefixVideoThumbnail = "video-thumbnail"
)

// ErrUpstreamUnavailable marks an object-storage call that failed.
var ErrUpstreamUnavailable = errors.New("object storage unavailable")

// UploadFile stores the file under "<prefix>/<uuid><ext>" and returns the
// public URL of the stored object.
func UploadFile(file multipart.File, header *multipart.FileHeader, prefix string) (string, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(config.AWSRegion),
	}))
	uploader := s3manager.NewUploader(sess)

	ext := filepath.Ext(header.Filename)
	key := prefix + "/" + uuid.New().String() + ext
	contentType := mime.TypeByExtension(ext)

	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(config.S3Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("failed to upload file")
		return "", errors.Wrap(ErrUpstreamUnavailable, err.Error())
	}
	return result.Location, nil
}
