package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Applicant routes
	users := protected.Group("", middleware.RequireSubject(auth.SubjectUser))
	{
		users.POST("/vacancies/:id/applications", handler.Apply)
	}

	// Recruiter routes
	companies := protected.Group("", middleware.RequireSubject(auth.SubjectCompany))
	{
		companies.GET("/vacancies/:id/applicants", handler.Applicants)
		companies.GET("/vacancies/:id/applicants/contacted", handler.ContactedApplicants)
		companies.POST("/vacancies/:id/hires", handler.RegisterNewHires)
		companies.GET("/applications/:id", handler.FormAnswers)
		companies.POST("/applications/:id/interview", handler.ScheduleInterview)
		companies.GET("/interview-notes/:id", handler.InterviewNotes)
		companies.PUT("/interview-notes/:id", handler.UpdateInterviewNotes)
	}
}

// Apply godoc
// @Summary      Apply to a vacancy
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Vacancy ID"
// @Param        request  body      domain.ApplicationForm  true  "Application form"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /vacancies/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req domain.ApplicationForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	id, err := h.applicationUC.Apply(c.Request.Context(), subjectID(c), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", gin.H{"id": id})
}

// Applicants godoc
// @Summary      List the applicants of a vacancy
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=[]domain.Applicant}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	applicants, err := h.applicationUC.Applicants(c.Request.Context(), subjectID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants retrieved", applicants)
}

// ContactedApplicants godoc
// @Summary      List the applicants with a scheduled interview
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=[]domain.ContactedApplicant}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/applicants/contacted [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ContactedApplicants(c *gin.Context) {
	contacted, err := h.applicationUC.ContactedApplicants(c.Request.Context(), subjectID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contacted applicants retrieved", contacted)
}

// FormAnswers godoc
// @Summary      Get the answers of an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.ApplicationForm}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) FormAnswers(c *gin.Context) {
	form, err := h.applicationUC.FormAnswers(c.Request.Context(), subjectID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", form)
}

// ScheduleInterview godoc
// @Summary      Schedule an interview for an application
// @Description  Opens empty interview notes for the application.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/interview [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	id, err := h.applicationUC.ScheduleInterview(c.Request.Context(), subjectID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", gin.H{"interview_notes_id": id})
}

// InterviewNotes godoc
// @Summary      Get interview notes
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Interview notes ID"
// @Success      200  {object}  response.Response{data=domain.InterviewNotes}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interview-notes/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) InterviewNotes(c *gin.Context) {
	notes, err := h.applicationUC.InterviewNotes(c.Request.Context(), subjectID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview notes retrieved", notes)
}

// UpdateInterviewNotes godoc
// @Summary      Replace interview notes
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Interview notes ID"
// @Param        request  body      domain.InterviewNotesUpdate  true  "Notes"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /interview-notes/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateInterviewNotes(c *gin.Context) {
	var req domain.InterviewNotesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.applicationUC.UpdateInterviewNotes(c.Request.Context(), subjectID(c), c.Param("id"), req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview notes updated", nil)
}

// RegisterNewHires godoc
// @Summary      Register new hires for a vacancy
// @Description  Either every user is hired or none is; refused users are listed with a reason.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Vacancy ID"
// @Param        request  body      domain.NewHiresRequest  true  "Users to hire"
// @Success      201      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      422      {object}  response.Response{error=[]domain.HireRejection}
// @Router       /vacancies/{id}/hires [post]
// @Security     BearerAuth
func (h *ApplicationHandler) RegisterNewHires(c *gin.Context) {
	var req domain.NewHiresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	rejections, err := h.applicationUC.RegisterNewHires(c.Request.Context(), subjectID(c), c.Param("id"), req.UserIDs)
	if err != nil {
		c.Error(err)
		return
	}
	if len(rejections) > 0 {
		response.Error(c, http.StatusUnprocessableEntity, "Some users cannot be hired", rejections)
		return
	}

	response.Success(c, http.StatusCreated, "New hires registered", nil)
}
