package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInspectPicture(t *testing.T) {
	t.Run("Accepts a valid png", func(t *testing.T) {
		info, err := storage.InspectPicture("profile_picture", storage.Payload{Filename: "a.png", Data: pngBytes(t, 3, 2)})

		require.NoError(t, err)
		assert.Equal(t, "png", info.Format)
		assert.Equal(t, 3, info.Width)
		assert.Equal(t, 2, info.Height)
	})

	t.Run("Rejects", func(t *testing.T) {
		cases := map[string]storage.Payload{
			"empty":          {Filename: "a.png"},
			"extension":      {Filename: "a.exe", Data: pngBytes(t, 1, 1)},
			"magic mismatch": {Filename: "a.jpg", Data: pngBytes(t, 1, 1)},
			"truncated":      {Filename: "a.png", Data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
		}
		for name, p := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := storage.InspectPicture("profile_picture", p)

				var validationErr *apperror.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "profile_picture", validationErr.Field)
			})
		}
	})
}
