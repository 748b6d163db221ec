// Package filetype кэширует реестр типов файлов из локального хранилища.
package filetype

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iudanet/vcresolve/internal/client/storage"
	"github.com/iudanet/vcresolve/internal/models"
)

// DefaultCacheSize number of extensions kept in memory.
const DefaultCacheSize = 1024

// Registry answers file type lookups for conflicts.
// Unregistered extensions are cached as nil.
type Registry struct {
	store storage.FileTypeStorage
	cache *lru.Cache[string, *models.FileType]
}

func NewRegistry(store storage.FileTypeStorage, size int) (*Registry, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *models.FileType](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create file type cache: %w", err)
	}
	return &Registry{store: store, cache: cache}, nil
}

func normalize(extension string) string {
	return strings.ToLower(strings.TrimPrefix(extension, "."))
}

// FileType returns the registered type or nil when the extension is unknown.
func (r *Registry) FileType(ctx context.Context, extension string) (*models.FileType, error) {
	key := normalize(extension)
	if fileType, ok := r.cache.Get(key); ok {
		return fileType, nil
	}

	fileType, err := r.store.GetFileTypeByExtension(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrFileTypeNotFound) {
			return nil, fmt.Errorf("failed to get file type for %q: %w", key, err)
		}
		fileType = nil
	}

	r.cache.Add(key, fileType)
	return fileType, nil
}

// Set registers a file type and drops cached lookups.
func (r *Registry) Set(ctx context.Context, fileType *models.FileType) error {
	if err := r.store.SaveFileType(ctx, fileType); err != nil {
		return err
	}
	r.cache.Purge()
	return nil
}

func (r *Registry) Delete(ctx context.Context, name string) error {
	if err := r.store.DeleteFileType(ctx, name); err != nil {
		return err
	}
	r.cache.Purge()
	return nil
}

func (r *Registry) List(ctx context.Context) ([]*models.FileType, error) {
	return r.store.ListFileTypes(ctx)
}
