package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ValidationDetail is the error body of a rejected profile payload.
type ValidationDetail struct {
	Field    string `json:"field"`
	Index    *int   `json:"index,omitempty"`
	Subfield string `json:"subfield,omitempty"`
	Reason   string `json:"reason"`
}

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var (
			validationErr *apperror.ValidationError
			appErr        *apperror.AppError
			storageErr    *apperror.StorageError
			txErr         *apperror.TransactionError
		)
		switch {
		case errors.As(err, &validationErr):
			detail := ValidationDetail{Field: validationErr.Field, Subfield: validationErr.Subfield, Reason: validationErr.Reason}
			if validationErr.Index >= 0 {
				detail.Index = &validationErr.Index
			}
			response.Error(c, http.StatusBadRequest, validationErr.Error(), detail)

		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logFailure(c, log, err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)

		case errors.As(err, &storageErr):
			logFailure(c, log, err)
			response.Error(c, http.StatusBadGateway, "Picture storage is unavailable. Please try again later.", nil)

		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Resource not found", nil)

		case errors.As(err, &txErr):
			logFailure(c, log, err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)

		default:
			// Internal details never reach the client.
			logFailure(c, log, err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}

func logFailure(c *gin.Context, log *slog.Logger, err error) {
	log.Error("request failed",
		"request_id", c.GetString(RequestIDKey),
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
}
