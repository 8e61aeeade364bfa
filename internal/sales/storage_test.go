package sales

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStorage_InsertAssignsIDs(t *testing.T) {
	storage, err := NewGormStorage(filepath.Join(t.TempDir(), "sales.db"))
	require.NoError(t, err)

	first := &Sale{UserID: 1, ProductID: 7, QuantitySold: 2, TotalRevenue: 39.98, SaleDate: time.Now().UTC()}
	second := &Sale{UserID: 1, ProductID: 7, QuantitySold: 1, TotalRevenue: 19.99, SaleDate: time.Now().UTC()}

	require.NoError(t, storage.Insert(first))
	require.NoError(t, storage.Insert(second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestGormStorage_GetAllNewestFirst(t *testing.T) {
	storage, err := NewGormStorage(filepath.Join(t.TempDir(), "sales.db"))
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, storage.Insert(&Sale{ProductID: 1, SaleDate: now.Add(-2 * time.Hour)}))
	require.NoError(t, storage.Insert(&Sale{ProductID: 2, SaleDate: now}))
	require.NoError(t, storage.Insert(&Sale{ProductID: 3, SaleDate: now.Add(-time.Hour)}))

	listed, err := storage.GetAll()

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, int64(2), listed[0].ProductID)
	assert.Equal(t, int64(3), listed[1].ProductID)
	assert.Equal(t, int64(1), listed[2].ProductID)
}

func TestGormStorage_GetAllEmpty(t *testing.T) {
	storage, err := NewGormStorage(filepath.Join(t.TempDir(), "sales.db"))
	require.NoError(t, err)

	listed, err := storage.GetAll()

	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestLocalStorage_InsertAndOrder(t *testing.T) {
	storage := NewLocalStorage()
	now := time.Now().UTC()

	older := &Sale{ProductID: 1, SaleDate: now.Add(-time.Hour)}
	newer := &Sale{ProductID: 2, SaleDate: now}
	require.NoError(t, storage.Insert(older))
	require.NoError(t, storage.Insert(newer))

	assert.Equal(t, int64(1), older.ID)
	assert.Equal(t, int64(2), newer.ID)

	listed, err := storage.GetAll()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(2), listed[0].ProductID)
	assert.Equal(t, int64(1), listed[1].ProductID)
}
