package usecase

import (
	"errors"
	"net/http"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/database"
)

// writeError maps failures of a synchronized write to client errors. The
// original error stays wrapped so handlers and logs can still inspect it.
func writeError(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return apperror.New(http.StatusNotFound, notFound, err)
	case conflict != "" && database.IsUniqueViolation(err):
		return apperror.New(http.StatusConflict, conflict, err)
	default:
		return err
	}
}

func readError(err error, notFound string) error {
	if isNotFound(err) {
		return apperror.New(http.StatusNotFound, notFound, err)
	}
	return err
}

// isNotFound also treats ids that are not valid UUIDs as unknown.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || database.IsInvalidInput(err)
}

func normalizePage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
