package v1

import (
	"net/http"
	"time"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler registers login and logout
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, loginGate gin.HandlerFunc, cookieTTL time.Duration, secureCookie bool) {
	handler := &AuthHandler{authUC: authUC, cookieTTL: cookieTTL, secureCookie: secureCookie}

	public.POST("/auth/login", loginGate, handler.Login)
	public.POST("/auth/logout", handler.Logout)
}

// Login godoc
// @Summary      Log in as a user or company admin
// @Description  Returns a bearer token and sets it as the auth_token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Credentials"
// @Success      200      {object}  domain.LoginResult
// @Failure      401      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", result.Token, int(h.cookieTTL.Seconds()), "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Logged in", result)
}

// Logout godoc
// @Summary      Clear the auth_token cookie
// @Tags         auth
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
