package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday-poster-funnel/internal/models"
	"holiday-poster-funnel/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.New(filepath.Join(dir, "uploads"), filepath.Join(dir, "orders"))
	require.NoError(t, err)
	return store
}

func TestNewCreatesDirectories(t *testing.T) {
	store := newStore(t)
	info, err := os.Stat(store.UploadsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	info, err = os.Stat(store.OrdersDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveUploadPreservesExtension(t *testing.T) {
	store := newStore(t)

	filename, publicPath, err := store.SaveUpload("family.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "family-"))
	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.Equal(t, "/uploads/"+filename, publicPath)

	data, err := os.ReadFile(filepath.Join(store.UploadsDir(), filename))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestSaveUploadDefaultsToJpg(t *testing.T) {
	store := newStore(t)
	filename, _, err := store.SaveUpload("photo", strings.NewReader("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))
}

func TestSaveUploadGeneratesDistinctNames(t *testing.T) {
	store := newStore(t)
	first, _, err := store.SaveUpload("same.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, _, err := store.SaveUpload("same.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestWriteAndReadOrder(t *testing.T) {
	store := newStore(t)
	order := &models.Order{
		OrderID:   storage.NewOrderID(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Vibe:      "elf",
		Tier:      "print",
		Quantity:  2,
		Total:     378,
		FilePath:  "/uploads/family-1-2.jpg",
		Status:    models.StatusPendingProof,
	}

	require.NoError(t, store.WriteOrder(order))

	data, err := store.ReadOrder(order.OrderID)
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.CreatedAt.Equal(order.CreatedAt))
	got.CreatedAt = order.CreatedAt
	assert.Equal(t, *order, got)
}

func TestReadOrderUnknownID(t *testing.T) {
	store := newStore(t)
	_, err := store.ReadOrder("order_1_2")
	assert.Error(t, err)
}

func TestReadOrderRejectsPathTraversal(t *testing.T) {
	store := newStore(t)
	for _, id := range []string{"", "../secrets", "a/b", `a\b`, "order_1..2"} {
		_, err := store.ReadOrder(id)
		assert.Error(t, err, "id %q", id)
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	id := storage.NewOrderID()
	assert.True(t, strings.HasPrefix(id, "order_"))
	assert.Len(t, strings.Split(id, "_"), 3)
	assert.NotEqual(t, id, storage.NewOrderID())
}
