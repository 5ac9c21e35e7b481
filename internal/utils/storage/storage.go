package storage

import (
	"Meal-Planner-Backend/internal/utils"
	"errors"
	"mime/multipart"
	"strings"
)

type Storage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
	UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

var AllowImage = []string{"image/png", "image/jpeg", "image/jpg", "image/gif", "image/webp"}

const (
	MaxUploadSizeCloud = 10 << 20 // 10MB when S3 is configured
	MaxUploadSizeLocal = 5 << 20  // 5MB on the local-disk fallback
)

var (
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
	ErrInvalidContentType = errors.New("file content type not allowed")
)

// NewStorage returns the S3-backed storage when a bucket is configured and
// falls back to local disk otherwise.
func NewStorage() Storage {
	utils.LoadConfig()
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		return NewAwsS3()
	}
	return NewLocalStorage()
}

func validateFile(file *multipart.FileHeader, maxSize int64, allowedTypes []string) error {
	if file.Size > maxSize {
		return ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrInvalidContentType
	}

	if len(allowedTypes) == 0 {
		return nil
	}
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return ErrInvalidContentType
}
