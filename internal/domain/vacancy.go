package domain

import (
	"context"
	"time"

	"go-talent-backend/pkg/database"
)

type Vacancy struct {
	ID                  string   `json:"id"`
	CompanyID           string   `json:"company_id"`
	Position            string   `json:"position"`
	OfficeAddress       string   `json:"office_address"`
	WorkModality        string   `json:"work_modality"`
	WorkDays            string   `json:"work_days"`
	DailySchedule       string   `json:"daily_schedule"`
	Description         string   `json:"description"`
	CreationDate        string   `json:"creation_date"`
	AcceptsApplications bool     `json:"accepts_applications"`
	Skills              []string `json:"skills"`
}

// VacancyDetails extends Vacancy with the posting company.
type VacancyDetails struct {
	Vacancy
	CompanyName           string `json:"company_name"`
	CompanyProfilePicture string `json:"company_profile_picture"`
}

// VacancySummary is one row of a vacancy listing.
type VacancySummary struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location"`
	DaysAgo  int    `json:"days_ago"`
}

// VacancyDraft is the body of a new or edited vacancy. Skills replace the
// stored skills wholesale.
type VacancyDraft struct {
	Position      string   `json:"position" binding:"required,max=100"`
	OfficeAddress string   `json:"office_address" binding:"required,max=255"`
	WorkModality  string   `json:"work_modality" binding:"required,max=50"`
	WorkDays      string   `json:"work_days" binding:"required,max=100"`
	DailySchedule string   `json:"daily_schedule" binding:"required,max=100"`
	Description   string   `json:"description" binding:"required,max=5000"`
	Skills        []string `json:"skills"`
}

// Vacancy search ordering. Only these values ever reach ORDER BY.
const (
	VacancyOrderCreationDate = "creation_date"
	VacancyOrderPosition     = "position"
	VacancyOrderCompany      = "company"
)

type VacancySearch struct {
	Position       string `form:"position" binding:"max=100"`
	Location       string `form:"location" binding:"max=255"`
	Company        string `form:"company" binding:"max=100"`
	OrderBy        string `form:"order_by" binding:"omitempty,oneof=creation_date position company"`
	OrderDirection string `form:"order_direction" binding:"omitempty,oneof=ASC DESC asc desc"`
}

type VacancyRepository interface {
	GetDetails(ctx context.Context, id string) (*VacancyDetails, error)
	// Owner returns the id of the company that posted the vacancy.
	Owner(ctx context.Context, id string) (string, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]VacancySummary, int64, error)
	Search(ctx context.Context, filter *VacancySearch, limit, offset int) ([]VacancySummary, int64, error)
	Close(ctx context.Context, id string) error
	PostBatch(vacancyID, companyID string, draft *VacancyDraft, now time.Time) database.Batch
	UpdateBatch(vacancyID string, draft *VacancyDraft) database.Batch
}

type VacancyUsecase interface {
	Post(ctx context.Context, companyID string, draft *VacancyDraft) (string, error)
	Update(ctx context.Context, companyID, vacancyID string, draft *VacancyDraft) error
	Details(ctx context.Context, vacancyID string) (*VacancyDetails, error)
	CompanyVacancies(ctx context.Context, companyID string, page, pageSize int) ([]VacancySummary, int64, error)
	Search(ctx context.Context, filter *VacancySearch, page, pageSize int) ([]VacancySummary, int64, error)
	Close(ctx context.Context, companyID, vacancyID string) error
}
