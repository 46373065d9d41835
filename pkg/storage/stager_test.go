package storage_test

import (
	"context"
	"errors"
	"testing"

	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, p storage.Payload) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

func TestStager(t *testing.T) {
	ctx := context.Background()
	payload := storage.Payload{Filename: "p.png", Data: []byte("png")}

	t.Run("Stage wraps put failures", func(t *testing.T) {
		store := new(MockBlobStore)
		store.On("Put", ctx, payload).Return("", errors.New("disk full"))

		_, err := storage.NewStager(store, nil).Stage(ctx, payload)

		var storageErr *apperror.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "put", storageErr.Op)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Supersede returns the new reference when cleanup fails", func(t *testing.T) {
		store := new(MockBlobStore)
		store.On("Put", ctx, payload).Return("new.png", nil)
		store.On("Delete", ctx, "old.png").Return(errors.New("permission denied"))

		ref, err := storage.NewStager(store, nil).Supersede(ctx, "old.png", payload)

		require.NoError(t, err)
		assert.Equal(t, "new.png", ref)
		store.AssertExpectations(t)
	})

	t.Run("Supersede never deletes when staging fails", func(t *testing.T) {
		store := new(MockBlobStore)
		store.On("Put", ctx, payload).Return("", errors.New("timeout"))

		_, err := storage.NewStager(store, nil).Supersede(ctx, "old.png", payload)

		require.Error(t, err)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Discard of empty reference is a no-op", func(t *testing.T) {
		store := new(MockBlobStore)

		require.NoError(t, storage.NewStager(store, nil).Discard(ctx, ""))
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Discard wraps delete failures", func(t *testing.T) {
		store := new(MockBlobStore)
		store.On("Delete", ctx, "gone.png").Return(errors.New("io"))

		err := storage.NewStager(store, nil).Discard(ctx, "gone.png")

		var storageErr *apperror.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "delete", storageErr.Op)
		assert.Equal(t, "gone.png", storageErr.Ref)
	})

	t.Run("Discard against a real store is re-entrant", func(t *testing.T) {
		local, err := storage.NewLocalStore(t.TempDir())
		require.NoError(t, err)
		stager := storage.NewStager(local, nil)

		ref, err := stager.Stage(ctx, payload)
		require.NoError(t, err)

		require.NoError(t, stager.Discard(ctx, ref))
		require.NoError(t, stager.Discard(ctx, ref))
	})
}
