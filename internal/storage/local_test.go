package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	content := "fake image bytes"

	require.NoError(t, store.Save(ctx, "photo.jpg", strings.NewReader(content), int64(len(content))))

	rc, err := store.Open(ctx, "photo.jpg")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, string(got))

	require.NoError(t, store.Remove(ctx, "photo.jpg"))
	_, err = store.Open(ctx, "photo.jpg")
	assert.Error(t, err)
}

func TestLocalStorage_RejectsInvalidNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	ctx := context.Background()
	attempts := []string{
		"../../../etc/passwd",
		"../escape.jpg",
		"nested/escape.jpg",
		"..",
		".",
		".hidden",
		"",
	}

	for _, name := range attempts {
		t.Run("save_"+name, func(t *testing.T) {
			err := store.Save(ctx, name, strings.NewReader("x"), 1)
			assert.Error(t, err, "name should be rejected: %q", name)
		})
		t.Run("open_"+name, func(t *testing.T) {
			_, err := store.Open(ctx, name)
			assert.Error(t, err, "name should be rejected: %q", name)
		})
	}

	// Nothing escaped the upload dir
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_SaveOverwritesExisting(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "a.png", strings.NewReader("one"), 3))
	require.NoError(t, store.Save(ctx, "a.png", strings.NewReader("two"), 3))

	rc, err := store.Open(ctx, "a.png")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}
