package redundancy

import (
	"context"
	"errors"
	"os"

	"github.com/iudanet/vcresolve/internal/crypto"
)

//go:generate moq -out filesystem_mock.go . FileSystem

// FileSystem доступ к локальным файлам рабочего пространства
type FileSystem interface {
	// ModTime возвращает время модификации в наносекундах Unix
	ModTime(path string) (int64, error)
	Exists(path string) bool
	// HashFile считает MD5 содержимого файла с учетом отмены ctx
	HashFile(ctx context.Context, path string) ([]byte, error)
	Remove(path string) error
}

// OSFileSystem implements FileSystem on top of the local disk.
type OSFileSystem struct{}

func NewOSFileSystem() FileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) ModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().UnixNano(), nil
}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileSystem) HashFile(ctx context.Context, path string) ([]byte, error) {
	return crypto.HashFile(ctx, path)
}

// Remove ignores files that are already gone.
func (OSFileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
