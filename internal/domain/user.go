package domain

import (
	"context"

	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/storage"
)

// ContactLink is one entry of a user's or company's contact links.
type ContactLink struct {
	Platform string `json:"platform" validate:"required,max=50,no_emoji"`
	Link     string `json:"link" validate:"required,url,max=255"`
}

type ExperienceRecord struct {
	Position    string `json:"position" validate:"required,max=100"`
	Company     string `json:"company" validate:"required,max=100"`
	StartDate   string `json:"start_date" validate:"required,iso_date"`
	EndDate     string `json:"end_date" validate:"omitempty,iso_date"` // empty while ongoing
	Description string `json:"description" validate:"max=1000"`
}

type EducationRecord struct {
	Title        string `json:"title" validate:"required,max=100"`
	Organization string `json:"organization" validate:"required,max=100"`
	StartDate    string `json:"start_date" validate:"required,iso_date"`
	EndDate      string `json:"end_date" validate:"omitempty,iso_date"`
	Description  string `json:"description" validate:"max=1000"`
}

// UserProfile is the presentation view of a user. ProfilePicture holds the
// stored reference when read from the repository and a URL once rendered.
type UserProfile struct {
	ID             string             `json:"id"`
	FullName       string             `json:"full_name"`
	Email          string             `json:"email"`
	Country        string             `json:"country"`
	Description    string             `json:"description"`
	ProfilePicture string             `json:"profile_picture"`
	ContactLinks   []ContactLink      `json:"contact_links"`
	Experience     []ExperienceRecord `json:"experience"`
	Skills         []string           `json:"skills"`
	Education      []EducationRecord  `json:"education"`
}

// UserProfileForm is the raw profile update: scalar fields plus each
// collection as an undecoded JSON array.
type UserProfileForm struct {
	Description  string
	ContactLinks string
	Experience   string
	Skills       string
	Education    string
}

// UserProfileUpdate is a decoded and validated UserProfileForm. Every
// collection replaces the stored one wholesale.
type UserProfileUpdate struct {
	Description  string
	ContactLinks []ContactLink
	Experience   []ExperienceRecord
	Skills       []string
	Education    []EducationRecord
}

type UserRegistration struct {
	FullName string `json:"full_name" binding:"required,max=100,valid_name"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Country  string `json:"country" binding:"required,max=60"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UserRepository reads users and builds the statement batches that write them.
type UserRepository interface {
	GetProfile(ctx context.Context, id string) (*UserProfile, error)
	ProfileBatch(userID, pictureRef string, update *UserProfileUpdate) database.Batch
	RegistrationBatch(userID string, reg *UserRegistration, hashedPassword string) database.Batch
}

type UserUsecase interface {
	Register(ctx context.Context, reg *UserRegistration) (string, error)
	UpdateProfile(ctx context.Context, userID string, picture *storage.Payload, form *UserProfileForm) error
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
}
