package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/vcresolve/internal/client/storage"
	"github.com/iudanet/vcresolve/internal/models"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "metadata_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestSaveAndGetServiceLevel(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Изначально уровень не сохранен
	_, err := store.GetServiceLevel(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrServiceLevelNotFound)

	err = store.SaveServiceLevel(ctx, models.ServiceLevelTFS2012QU1)
	require.NoError(t, err)

	level, err := store.GetServiceLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceLevelTFS2012QU1, level)

	// Перезапись
	require.NoError(t, store.SaveServiceLevel(ctx, models.ServiceLevelPreTFS2010))
	level, err = store.GetServiceLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceLevelPreTFS2010, level)
}

func TestServiceLevel_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveServiceLevel(ctx, models.ServiceLevelTFS2010))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	level, err := store.GetServiceLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceLevelTFS2010, level)
}

func TestGetServiceLevel_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetServiceLevel(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

func TestSaveServiceLevel_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	err = store.SaveServiceLevel(ctx, models.ServiceLevelTFS2012)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
