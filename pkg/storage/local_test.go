package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-talent-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "user_pfp")
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	t.Run("Put writes the payload under a fresh name", func(t *testing.T) {
		p := storage.Payload{Filename: "Me.PNG", Data: []byte("picture")}

		ref1, err := store.Put(ctx, p)
		require.NoError(t, err)
		ref2, err := store.Put(ctx, p)
		require.NoError(t, err)

		assert.NotEqual(t, ref1, ref2)
		assert.Equal(t, ".png", filepath.Ext(ref1))

		data, err := os.ReadFile(filepath.Join(dir, ref1))
		require.NoError(t, err)
		assert.Equal(t, []byte("picture"), data)

		matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
		assert.Empty(t, matches)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		ref, err := store.Put(ctx, storage.Payload{Filename: "a.jpg", Data: []byte("x")})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, ref))
		require.NoError(t, store.Delete(ctx, ref))

		_, ok := store.Path(ref)
		assert.False(t, ok)
	})

	t.Run("Rejects references escaping the directory", func(t *testing.T) {
		for _, ref := range []string{"", "..", "../secret", "a/b.png", `a\b.png`} {
			assert.ErrorIs(t, store.Delete(ctx, ref), storage.ErrInvalidRef, ref)
			_, ok := store.Path(ref)
			assert.False(t, ok, ref)
		}
	})

	t.Run("Path resolves existing files only", func(t *testing.T) {
		ref, err := store.Put(ctx, storage.Payload{Filename: "b.gif", Data: []byte("x")})
		require.NoError(t, err)

		path, ok := store.Path(ref)
		require.True(t, ok)
		assert.True(t, filepath.IsAbs(path))

		_, ok = store.Path("missing.gif")
		assert.False(t, ok)
	})
}

func TestPathLocator(t *testing.T) {
	locator := storage.NewPathLocator("/v1/pictures/user/")

	assert.Equal(t, "/v1/pictures/user/abc.png", locator.URL("abc.png"))
	assert.Equal(t, "", locator.URL(""))
}
