package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SetGetDelete(t *testing.T) {
	storage, err := NewFileStorage(":memory:")
	require.NoError(t, err)

	ctx := context.Background()

	_, err = storage.Get(ctx, "users")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, storage.Set(ctx, "users", `{"a@x.com":{}}`))

	value, err := storage.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `{"a@x.com":{}}`, value)

	require.NoError(t, storage.Delete(ctx, "users"))
	_, err = storage.Get(ctx, "users")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStorage_DeleteAbsentKey(t *testing.T) {
	storage, err := NewFileStorage(":memory:")
	require.NoError(t, err)

	assert.NoError(t, storage.Delete(context.Background(), "currentSession"))
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	ctx := context.Background()

	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, storage.Set(ctx, "rememberedEmail", "a@x.com"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, "rememberedEmail")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", value)
}

func TestFileStorage_EmptyPathDefaultsToMemory(t *testing.T) {
	storage, err := NewFileStorage("")
	require.NoError(t, err)

	require.NoError(t, storage.Set(context.Background(), "k", "v"))

	value, err := storage.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestFileStorage_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	_, err := NewFileStorage(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrKeyNotFound))
}
