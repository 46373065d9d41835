package domain

import (
	"context"
	"time"

	"go-talent-backend/pkg/database"
)

// Reasons a user cannot be registered as a new hire.
const (
	HireRejectedNotFound     = "not found"
	HireRejectedAlreadyHired = "already hired"
)

// ApplicationForm holds the answers a user submits when applying to a vacancy.
type ApplicationForm struct {
	ContactEmail          string `json:"contact_email" binding:"required,email,max=255"`
	PhoneNumber           string `json:"phone_number" binding:"required,e164"`
	HighestEducationLevel string `json:"highest_education_level" binding:"required,max=100"`
	Experience            string `json:"experience" binding:"required,max=2000"`
	HardSkills            string `json:"hard_skills" binding:"required,max=1000"`
	SoftSkills            string `json:"soft_skills" binding:"required,max=1000"`
	ApplicationReason     string `json:"application_reason" binding:"required,max=2000"`
	PortfolioLink         string `json:"portfolio_link" binding:"required,url,max=255"`
}

// Applicant is one row of a vacancy's applicant list.
type Applicant struct {
	ApplicationID  string `json:"application_id"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
	AppliedOn      string `json:"applied_on"`
}

// ContactedApplicant is an applicant with a scheduled interview.
type ContactedApplicant struct {
	Applicant
	InterviewNotesID string `json:"interview_notes_id"`
}

type InterviewNotes struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	Notes         string `json:"notes"`
}

type InterviewNotesUpdate struct {
	Notes string `json:"notes" binding:"required,max=5000"`
}

type NewHiresRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,max=100,dive,uuid"`
}

// HireRejection explains why one requested hire was refused.
type HireRejection struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// VacancyScope is what the application flow needs to know about a vacancy.
type VacancyScope struct {
	CompanyID           string
	Position            string
	AcceptsApplications bool
}

type ApplicationRepository interface {
	Vacancy(ctx context.Context, vacancyID string) (*VacancyScope, error)
	// ApplicationOwner returns the company that posted the application's vacancy.
	ApplicationOwner(ctx context.Context, applicationID string) (string, error)
	NotesOwner(ctx context.Context, notesID string) (string, error)
	Applicants(ctx context.Context, vacancyID string) ([]Applicant, error)
	ContactedApplicants(ctx context.Context, vacancyID string) ([]ContactedApplicant, error)
	FormAnswers(ctx context.Context, applicationID string) (*ApplicationForm, error)
	InterviewNotes(ctx context.Context, notesID string) (*InterviewNotes, error)
	// HireRejections reports, in request order, users that do not exist or
	// are already actively employed.
	HireRejections(ctx context.Context, userIDs []string) ([]HireRejection, error)
	ApplicationBatch(applicationID, vacancyID, userID string, form *ApplicationForm, now time.Time) database.Batch
	InterviewBatch(notesID, applicationID string) database.Batch
	NotesBatch(notesID, notes string) database.Batch
	HiresBatch(companyID, position string, userIDs []string, now time.Time) database.Batch
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, vacancyID string, form *ApplicationForm) (string, error)
	Applicants(ctx context.Context, companyID, vacancyID string) ([]Applicant, error)
	ContactedApplicants(ctx context.Context, companyID, vacancyID string) ([]ContactedApplicant, error)
	FormAnswers(ctx context.Context, companyID, applicationID string) (*ApplicationForm, error)
	ScheduleInterview(ctx context.Context, companyID, applicationID string) (string, error)
	InterviewNotes(ctx context.Context, companyID, notesID string) (*InterviewNotes, error)
	UpdateInterviewNotes(ctx context.Context, companyID, notesID, notes string) error
	// RegisterNewHires records every user as an employee, or none of them.
	// When any user is refused the rejections are returned and nothing is
	// written.
	RegisterNewHires(ctx context.Context, companyID, vacancyID string, userIDs []string) ([]HireRejection, error)
}
