package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"socialnet/internal/config"
)

type LocalStorage struct {
	uploadDir string
}

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок: %w", err)
	}

	return &LocalStorage{uploadDir: cfg.UploadDir}, nil
}

func (s *LocalStorage) UploadMedia(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	// префикс с меткой времени исключает коллизии имен
	safeName := filepath.Base(fileName)
	objectName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safeName)

	dst, err := os.Create(filepath.Join(s.uploadDir, objectName))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании файла: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("ошибка при записи файла: %w", err)
	}

	return "/" + s.uploadDir + "/" + objectName, nil
}

func (s *LocalStorage) DeleteMedia(ctx context.Context, mediaPath string) error {
	objectName := strings.TrimPrefix(mediaPath, "/"+s.uploadDir+"/")
	if objectName == mediaPath || strings.Contains(objectName, "/") {
		return fmt.Errorf("неверный путь медиафайла: %s", mediaPath)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, objectName)); err != nil {
		return fmt.Errorf("ошибка при удалении файла: %w", err)
	}

	return nil
}
