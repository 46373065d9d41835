package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// readPicture loads an optional multipart file. A missing file is nil.
func readPicture(c *gin.Context, field string, maxBytes int64) (*storage.Payload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.BadRequest("Request must be a valid multipart form")
	}
	if fh.Size > maxBytes {
		return nil, apperror.TooLarge(fmt.Sprintf("%s must be at most %d bytes", field, maxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperror.BadRequest("Could not read " + field)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, apperror.BadRequest("Could not read " + field)
	}
	if int64(len(data)) > maxBytes {
		return nil, apperror.TooLarge(fmt.Sprintf("%s must be at most %d bytes", field, maxBytes))
	}

	return &storage.Payload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// bindError turns a binding failure into a 400 listing every bad field.
func bindError(err error) error {
	return apperror.New(http.StatusBadRequest, strings.Join(validation.FormatValidationErrors(err), "; "), err)
}

func subjectID(c *gin.Context) string {
	return c.GetString(string(domain.KeySubjectID))
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}
