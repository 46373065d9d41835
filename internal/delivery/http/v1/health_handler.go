package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Service health
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(healthUC usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := healthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
