package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type CompanyProfileHandler struct {
	companyUC      domain.CompanyUsecase
	maxUploadBytes int64
}

// NewCompanyProfileHandler registers company profile routes
func NewCompanyProfileHandler(public, protected *gin.RouterGroup, companyUC domain.CompanyUsecase, uploadGate gin.HandlerFunc, maxUploadBytes int64) {
	handler := &CompanyProfileHandler{companyUC: companyUC, maxUploadBytes: maxUploadBytes}

	public.POST("/companies/register", uploadGate, handler.Register)
	public.GET("/companies/:id/profile", handler.GetProfile)

	companies := protected.Group("/companies/me", middleware.RequireSubject(auth.SubjectCompany))
	{
		companies.GET("/profile", handler.GetOwnProfile)
		companies.PUT("/profile", uploadGate, handler.UpdateProfile)
	}
}

// Register godoc
// @Summary      Register a company
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        profile_picture    formData  file    true  "Company logo"
// @Param        name               formData  string  true  "Company name"
// @Param        admin_email        formData  string  true  "Administrator email"
// @Param        admin_password     formData  string  true  "Administrator password"
// @Param        type               formData  string  true  "Company type"
// @Param        commercial_sector  formData  string  true  "Commercial sector"
// @Param        employee_count     formData  int     true  "Employee count"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /companies/register [post]
func (h *CompanyProfileHandler) Register(c *gin.Context) {
	var req domain.CompanyRegistration
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	picture, err := readPicture(c, "profile_picture", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	id, err := h.companyUC.Register(c.Request.Context(), picture, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company registered", gin.H{"id": id})
}

// GetProfile godoc
// @Summary      Get a company profile
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.CompanyProfile
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/profile [get]
func (h *CompanyProfileHandler) GetProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("id"))
}

// GetOwnProfile godoc
// @Summary      Get the logged-in company's profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  domain.CompanyProfile
// @Router       /companies/me/profile [get]
// @Security     BearerAuth
func (h *CompanyProfileHandler) GetOwnProfile(c *gin.Context) {
	h.respondProfile(c, subjectID(c))
}

func (h *CompanyProfileHandler) respondProfile(c *gin.Context, id string) {
	profile, err := h.companyUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Replace the logged-in company's profile
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        profile_picture  formData  file    false  "New logo"
// @Param        description      formData  string  false  "Description"
// @Param        mission          formData  string  false  "Mission"
// @Param        vision           formData  string  false  "Vision"
// @Param        address          formData  string  false  "Address"
// @Param        contact_links    formData  string  true   "JSON array of {platform, link}"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /companies/me/profile [put]
// @Security     BearerAuth
func (h *CompanyProfileHandler) UpdateProfile(c *gin.Context) {
	picture, err := readPicture(c, "profile_picture", h.maxUploadBytes)
	if err != nil {
		c.Error(err)
		return
	}

	form := &domain.CompanyProfileForm{
		Description:  c.PostForm("description"),
		Mission:      c.PostForm("mission"),
		Vision:       c.PostForm("vision"),
		Address:      c.PostForm("address"),
		ContactLinks: c.PostForm("contact_links"),
	}

	if err := h.companyUC.UpdateProfile(c.Request.Context(), subjectID(c), picture, form); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile updated", nil)
}
