package storage_test

import (
	"context"
	"errors"
	"testing"

	"go-talent-backend/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3 struct {
	mock.Mock
}

func (m *MockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Put stores under the prefix with a fresh key", func(t *testing.T) {
		client := new(MockS3)
		client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "talent" &&
				len(aws.ToString(in.Key)) > len("user_pfp/") &&
				aws.ToString(in.Key)[:len("user_pfp/")] == "user_pfp/" &&
				aws.ToString(in.ContentType) == "image/png"
		})).Return(&s3.PutObjectOutput{}, nil)

		store := storage.NewS3Store(client, "talent", "user_pfp", "https://cdn.example.com/")
		ref, err := store.Put(ctx, storage.Payload{Filename: "me.png", ContentType: "image/png", Data: []byte("x")})

		require.NoError(t, err)
		assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, ref)
		assert.Equal(t, "https://cdn.example.com/user_pfp/"+ref, store.URL(ref))
		client.AssertExpectations(t)
	})

	t.Run("Put failures are returned", func(t *testing.T) {
		client := new(MockS3)
		client.On("PutObject", ctx, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := storage.NewS3Store(client, "talent", "", "").Put(ctx, storage.Payload{Filename: "a.jpg"})

		assert.ErrorContains(t, err, "throttled")
	})

	t.Run("Delete validates the reference", func(t *testing.T) {
		client := new(MockS3)

		err := storage.NewS3Store(client, "talent", "", "").Delete(ctx, "../etc/passwd")

		assert.ErrorIs(t, err, storage.ErrInvalidRef)
		client.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("Delete targets the prefixed key", func(t *testing.T) {
		client := new(MockS3)
		client.On("DeleteObject", ctx, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return aws.ToString(in.Key) == "company_pfp/a.png"
		})).Return(&s3.DeleteObjectOutput{}, nil)

		err := storage.NewS3Store(client, "talent", "company_pfp/", "").Delete(ctx, "a.png")

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("URL is empty without a public base", func(t *testing.T) {
		assert.Equal(t, "", storage.NewS3Store(new(MockS3), "talent", "", "").URL("a.png"))
	})
}
