package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC         domain.UserUsecase
	maxUploadBytes int64
}

// NewUserHandler registers user routes
func NewUserHandler(public, protected *gin.RouterGroup, userUC domain.UserUsecase, uploadGate gin.HandlerFunc, maxUploadBytes int64) {
	handler := &UserHandler{userUC: userUC, maxUploadBytes: maxUploadBytes}

	public.POST("/users/register", handler.Register)
	public.GET("/users/:id/profile", handler.GetProfile)

	users := protected.Group("/users/me", middleware.RequireSubject(auth.SubjectUser))
	{
		users.GET("/profile", handler.GetOwnProfile)
		users.PUT("/profile", uploadGate, handler.UpdateProfile)
	}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      domain.UserRegistration  true  "Account data"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req domain.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	id, err := h.userUC.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered", gin.H{"id": id})
}

// GetProfile godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.UserProfile
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("id"))
}

// GetOwnProfile godoc
// @Summary      Get the logged-in user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  response.Response
// @Router       /users/me/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetOwnProfile(c *gin.Context) {
	h.respondProfile(c, subjectID(c))
}

func (h *UserHandler) respondProfile(c *gin.Context, id string) {
	profile, err := h.userUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Replace the logged-in user's profile
// @Description  Every collection is a JSON array replacing the stored one; [] clears it. Omitting profile_picture keeps the current picture.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        profile_picture  formData  file    false  "New profile picture"
// @Param        description      formData  string  false  "About me"
// @Param        contact_links    formData  string  true   "JSON array of {platform, link}"
// @Param        experience       formData  string  true   "JSON array of {position, company, start_date, end_date, description}"
// @Param        skills           formData  string  true   "JSON array of strings"
// @Param        education        formData  string  true   "JSON array of {title, organization, start_date, end_date, description}"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /users/me/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	picture, err := readPicture(c, "profile_picture", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	form := &domain.UserProfileForm{
		Description:  c.PostForm("description"),
		ContactLinks: c.PostForm("contact_links"),
		Experience:   c.PostForm("experience"),
		Skills:       c.PostForm("skills"),
		Education:    c.PostForm("education"),
	}

	if err := h.userUC.UpdateProfile(c.Request.Context(), subjectID(c), picture, form); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}
