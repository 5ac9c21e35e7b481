package storage

import (
	"Meal-Planner-Backend/internal/utils"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type localStorage struct {
	baseDir string
	appURL  string
}

func NewLocalStorage() Storage {
	baseDir := utils.GetConfig("UPLOAD_DIR")
	if baseDir == "" {
		baseDir = "./uploads"
	}

	return &localStorage{
		baseDir: baseDir,
		appURL:  strings.TrimSuffix(utils.GetConfig("APP_URL"), "/"),
	}
}

func (l *localStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if err := validateFile(file, MaxUploadSizeLocal, allowedTypes); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)

	if err := l.writeFile(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	if err := validateFile(file, MaxUploadSizeLocal, allowedTypes); err != nil {
		return "", err
	}

	if err := l.writeFile(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *localStorage) writeFile(objectKey string, file *multipart.FileHeader) error {
	dst := filepath.Join(l.baseDir, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func (l *localStorage) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
}

func (l *localStorage) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/uploads/%s", l.appURL, objectKey)
}

func (l *localStorage) GetObjectKeyFromLink(link string) string {
	prefix := l.appURL + "/uploads/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
