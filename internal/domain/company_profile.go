package domain

import (
	"context"
	"time"

	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/storage"
)

// CompanyProfile is the presentation view of a company.
type CompanyProfile struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	ProfilePicture   string        `json:"profile_picture"`
	Type             string        `json:"type"`
	CommercialSector string        `json:"commercial_sector"`
	EmployeeCount    int           `json:"employee_count"`
	Address          string        `json:"address"`
	Description      string        `json:"description"`
	Mission          string        `json:"mission"`
	Vision           string        `json:"vision"`
	ContactLinks     []ContactLink `json:"contact_links"`
}

// CompanyProfileForm carries contact links as an undecoded JSON array.
type CompanyProfileForm struct {
	Description  string
	Mission      string
	Vision       string
	Address      string
	ContactLinks string
}

type CompanyProfileUpdate struct {
	Description  string
	Mission      string
	Vision       string
	Address      string
	ContactLinks []ContactLink
}

type CompanyRegistration struct {
	Name             string `form:"name" binding:"required,max=100,valid_name"`
	AdminEmail       string `form:"admin_email" binding:"required,email,max=255"`
	AdminPassword    string `form:"admin_password" binding:"required,min=8,max=72"`
	Type             string `form:"type" binding:"required,max=50"`
	CommercialSector string `form:"commercial_sector" binding:"required,max=100"`
	EmployeeCount    int    `form:"employee_count" binding:"required,min=1"`
}

// CompanyRepository reads companies and builds the batches that write them.
type CompanyRepository interface {
	GetProfile(ctx context.Context, id string) (*CompanyProfile, error)
	ProfileBatch(companyID, pictureRef string, update *CompanyProfileUpdate, now time.Time) database.Batch
	RegistrationBatch(companyID, pictureRef string, reg *CompanyRegistration, hashedPassword string, now time.Time) database.Batch
}

type CompanyUsecase interface {
	Register(ctx context.Context, picture *storage.Payload, reg *CompanyRegistration) (string, error)
	UpdateProfile(ctx context.Context, companyID string, picture *storage.Payload, form *CompanyProfileForm) error
	GetProfile(ctx context.Context, companyID string) (*CompanyProfile, error)
}
