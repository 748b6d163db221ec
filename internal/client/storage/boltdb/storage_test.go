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

func requireBuckets(t *testing.T, db *bbolt.DB) {
	t.Helper()
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFileTypes, bucketMetadata} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	}))
}

func TestNew_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	requireBuckets(t, store.db)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

// Второй процесс vcresolve не ждет бесконечно, пока первый держит БД
func TestNew_Locked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		_ = first.Close()
	}()

	second, err := New(context.Background(), dbPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDatabaseLocked)
	assert.Nil(t, second)
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveFileType(ctx, &models.FileType{Name: "Text", Extensions: []string{"txt"}, AllowMultipleCheckout: true}))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	fileType, err := store.GetFileTypeByExtension(ctx, "txt")
	require.NoError(t, err)
	assert.Equal(t, "Text", fileType.Name)
}

func TestClose_Twice(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}

func TestInitBuckets_RecreatesMissing(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "client.db"), 0600, nil)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	}))

	require.NoError(t, store.initBuckets())
	requireBuckets(t, db)
}
