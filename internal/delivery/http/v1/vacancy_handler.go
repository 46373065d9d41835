package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

// NewVacancyHandler registers vacancy routes
func NewVacancyHandler(public, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	public.GET("/vacancies", handler.Search)
	public.GET("/vacancies/:id", handler.Details)

	companies := protected.Group("", middleware.RequireSubject(auth.SubjectCompany))
	{
		companies.POST("/vacancies", handler.Post)
		companies.PUT("/vacancies/:id", handler.Update)
		companies.POST("/vacancies/:id/close", handler.Close)
		companies.GET("/companies/me/vacancies", handler.CompanyVacancies)
	}
}

// Post godoc
// @Summary      Post a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        request  body      domain.VacancyDraft  true  "Vacancy"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Post(c *gin.Context) {
	var req domain.VacancyDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	id, err := h.vacancyUC.Post(c.Request.Context(), subjectID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy posted", gin.H{"id": id})
}

// Update godoc
// @Summary      Edit a vacancy
// @Description  Skills replace the stored skills.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Vacancy ID"
// @Param        request  body      domain.VacancyDraft  true  "Vacancy"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	var req domain.VacancyDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.vacancyUC.Update(c.Request.Context(), subjectID(c), c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy updated", nil)
}

// Details godoc
// @Summary      Get vacancy details
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  domain.VacancyDetails
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) Details(c *gin.Context) {
	details, err := h.vacancyUC.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy retrieved", details)
}

// Search godoc
// @Summary      Search open vacancies
// @Tags         vacancies
// @Produce      json
// @Param        position         query  string  false  "Position contains"
// @Param        location         query  string  false  "Office address contains"
// @Param        company          query  string  false  "Company name contains"
// @Param        order_by         query  string  false  "creation_date, position or company"
// @Param        order_direction  query  string  false  "ASC or DESC"
// @Param        page             query  int     false  "Page number"
// @Param        page_size        query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=response.Page}
// @Router       /vacancies [get]
func (h *VacancyHandler) Search(c *gin.Context) {
	var filter domain.VacancySearch
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(bindError(err))
		return
	}
	page, pageSize := pagination(c)

	vacancies, total, err := h.vacancyUC.Search(c.Request.Context(), &filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, "Vacancies", vacancies, total, page, pageSize)
}

// CompanyVacancies godoc
// @Summary      List the logged-in company's vacancies
// @Tags         vacancies
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Page}
// @Router       /companies/me/vacancies [get]
// @Security     BearerAuth
func (h *VacancyHandler) CompanyVacancies(c *gin.Context) {
	page, pageSize := pagination(c)

	vacancies, total, err := h.vacancyUC.CompanyVacancies(c.Request.Context(), subjectID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, "Company vacancies", vacancies, total, page, pageSize)
}

// Close godoc
// @Summary      Stop accepting applications
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /vacancies/{id}/close [post]
// @Security     BearerAuth
func (h *VacancyHandler) Close(c *gin.Context) {
	if err := h.vacancyUC.Close(c.Request.Context(), subjectID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy closed", nil)
}
