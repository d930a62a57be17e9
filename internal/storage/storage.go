package storage

import (
	"context"
	"io"
)

// Storage хранит загруженные медиафайлы. UploadMedia возвращает относительный
// путь, который сохраняется в поле media поста.
type Storage interface {
	UploadMedia(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	DeleteMedia(ctx context.Context, mediaPath string) error
}
