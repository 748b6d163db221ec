package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/vcresolve/internal/client/storage"
	"github.com/iudanet/vcresolve/internal/models"
)

const (
	keyServiceLevel = "service_level"
)

// SaveServiceLevel saves the service level reported by the server
func (s *Storage) SaveServiceLevel(ctx context.Context, level models.ServiceLevel) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем уровень в bytes
		levelBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(levelBytes, uint64(level))

		if err := bucket.Put([]byte(keyServiceLevel), levelBytes); err != nil {
			return fmt.Errorf("failed to save service level: %w", err)
		}

		return nil
	})
}

// GetServiceLevel retrieves the cached service level
// Returns storage.ErrServiceLevelNotFound if it was never saved
func (s *Storage) GetServiceLevel(ctx context.Context) (models.ServiceLevel, error) {
	var level models.ServiceLevel

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		levelBytes := bucket.Get([]byte(keyServiceLevel))
		if levelBytes == nil {
			return storage.ErrServiceLevelNotFound
		}

		// Конвертируем bytes обратно в уровень
		level = models.ServiceLevel(binary.BigEndian.Uint64(levelBytes))
		return nil
	})

	if err != nil {
		return models.ServiceLevelUnknown, fmt.Errorf("failed to get service level: %w", err)
	}

	return level, nil
}
