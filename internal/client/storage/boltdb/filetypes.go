package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/iudanet/vcresolve/internal/client/storage"
	"github.com/iudanet/vcresolve/internal/models"
)

// SaveFileType stores or replaces a file type by name
func (s *Storage) SaveFileType(ctx context.Context, fileType *models.FileType) error {
	if fileType == nil || fileType.Name == "" {
		return fmt.Errorf("file type name cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFileTypes)
		if bucket == nil {
			return fmt.Errorf("filetypes bucket not found")
		}

		// Сериализуем тип файла в JSON
		data, err := json.Marshal(fileType)
		if err != nil {
			return fmt.Errorf("failed to marshal file type: %w", err)
		}

		if err := bucket.Put([]byte(fileType.Name), data); err != nil {
			return fmt.Errorf("failed to save file type: %w", err)
		}

		return nil
	})
}

// GetFileTypeByExtension finds the file type registered for the extension
func (s *Storage) GetFileTypeByExtension(ctx context.Context, extension string) (*models.FileType, error) {
	var found *models.FileType
	extension = strings.TrimPrefix(extension, ".")

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFileTypes)
		if bucket == nil {
			return fmt.Errorf("filetypes bucket not found")
		}

		// Ключи отсортированы по имени, берем первый подходящий тип
		return bucket.ForEach(func(k, v []byte) error {
			if found != nil {
				return nil
			}

			fileType := &models.FileType{}
			if err := json.Unmarshal(v, fileType); err != nil {
				return fmt.Errorf("failed to unmarshal file type: %w", err)
			}

			for _, ext := range fileType.Extensions {
				if strings.EqualFold(strings.TrimPrefix(ext, "."), extension) {
					found = fileType
					return nil
				}
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, storage.ErrFileTypeNotFound
	}

	return found, nil
}

// ListFileTypes returns all registered file types ordered by name
func (s *Storage) ListFileTypes(ctx context.Context) ([]*models.FileType, error) {
	var fileTypes []*models.FileType

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFileTypes)
		if bucket == nil {
			return fmt.Errorf("filetypes bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			fileType := &models.FileType{}
			if err := json.Unmarshal(v, fileType); err != nil {
				return fmt.Errorf("failed to unmarshal file type: %w", err)
			}
			fileTypes = append(fileTypes, fileType)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return fileTypes, nil
}

// DeleteFileType removes a file type by name
func (s *Storage) DeleteFileType(ctx context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFileTypes)
		if bucket == nil {
			return fmt.Errorf("filetypes bucket not found")
		}

		if bucket.Get([]byte(name)) == nil {
			return storage.ErrFileTypeNotFound
		}

		if err := bucket.Delete([]byte(name)); err != nil {
			return fmt.Errorf("failed to delete file type: %w", err)
		}

		return nil
	})
}
