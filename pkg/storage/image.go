package storage

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WEBP decoder

	"go-talent-backend/pkg/apperror"
)

// Magic byte signatures for allowed picture types
var pictureMagic = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	".webp": {{0x52, 0x49, 0x46, 0x46}},
	".bmp":  {{0x42, 0x4D}},
}

// MaxPictureDimension bounds width and height of accepted pictures.
const MaxPictureDimension = 4096

// PictureInfo describes a validated picture.
type PictureInfo struct {
	Format string
	Width  int
	Height int
}

// InspectPicture checks that p is an image whose extension matches its
// content and whose header decodes within the size bounds. Failures are
// reported as ValidationError on field.
func InspectPicture(field string, p Payload) (*PictureInfo, error) {
	if len(p.Data) == 0 {
		return nil, apperror.Invalid(field, "file is empty")
	}

	signatures, ok := pictureMagic[p.Ext()]
	if !ok {
		return nil, apperror.Invalid(field, "file must be an image (jpg, png, gif, webp, bmp)")
	}

	matched := false
	for _, sig := range signatures {
		if bytes.HasPrefix(p.Data, sig) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, apperror.Invalid(field, "file content does not match its extension")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(p.Data))
	if err != nil {
		return nil, apperror.Invalid(field, "file is not a readable image")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxPictureDimension || cfg.Height > MaxPictureDimension {
		return nil, apperror.Invalid(field, "image dimensions are out of bounds")
	}

	return &PictureInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
