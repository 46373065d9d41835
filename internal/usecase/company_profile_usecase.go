package usecase

import (
	"context"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/storage"
)

type companyUsecase struct {
	repo    domain.CompanyRepository
	sync    *ProfileSynchronizer
	hasher  domain.PasswordHasher
	locator domain.AssetLocator
	newID   database.IDGenerator
}

// NewCompanyUsecase creates a new company profile usecase
func NewCompanyUsecase(
	repo domain.CompanyRepository,
	sync *ProfileSynchronizer,
	hasher domain.PasswordHasher,
	locator domain.AssetLocator,
	newID database.IDGenerator,
) domain.CompanyUsecase {
	if newID == nil {
		newID = database.NewUUID
	}
	return &companyUsecase{repo: repo, sync: sync, hasher: hasher, locator: locator, newID: newID}
}

// Register creates a company together with its mandatory profile picture.
// A failed insert discards the staged picture.
func (uc *companyUsecase) Register(ctx context.Context, picture *storage.Payload, reg *domain.CompanyRegistration) (string, error) {
	if picture == nil {
		return "", uc.sync.Reject(domain.EntityCompany, apperror.Invalid("profile_picture", "is required"))
	}
	if _, err := storage.InspectPicture("profile_picture", *picture); err != nil {
		return "", uc.sync.Reject(domain.EntityCompany, err)
	}

	hashed, err := uc.hasher.Hash(reg.AdminPassword)
	if err != nil {
		return "", apperror.Internal(err)
	}

	id := uc.newID()
	now := time.Now().UTC()
	err = uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityCompany,
		EntityID: id,
		Asset:    picture,
		Create:   true,
		Build: func(pictureRef string) database.Batch {
			return uc.repo.RegistrationBatch(id, pictureRef, reg, hashed, now)
		},
	})
	if err != nil {
		return "", writeError(err, "Company not found", "Admin email is already registered")
	}
	return id, nil
}

// UpdateProfile replaces the company's descriptive fields and contact links.
func (uc *companyUsecase) UpdateProfile(ctx context.Context, companyID string, picture *storage.Payload, form *domain.CompanyProfileForm) error {
	update, err := decodeCompanyProfile(form)
	if err != nil {
		return uc.sync.Reject(domain.EntityCompany, err)
	}
	if picture != nil {
		if _, err := storage.InspectPicture("profile_picture", *picture); err != nil {
			return uc.sync.Reject(domain.EntityCompany, err)
		}
	}

	now := time.Now().UTC()
	err = uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityCompany,
		EntityID: companyID,
		Asset:    picture,
		Build: func(pictureRef string) database.Batch {
			return uc.repo.ProfileBatch(companyID, pictureRef, update, now)
		},
	})
	return writeError(err, "Company not found", "")
}

func (uc *companyUsecase) GetProfile(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	profile, err := uc.repo.GetProfile(ctx, companyID)
	if err != nil {
		return nil, readError(err, "Company profile not found")
	}
	if profile.ProfilePicture != "" {
		profile.ProfilePicture = uc.locator.URL(profile.ProfilePicture)
	}
	return profile, nil
}

func decodeCompanyProfile(form *domain.CompanyProfileForm) (*domain.CompanyProfileUpdate, error) {
	fields := []struct{ name, value, tag string }{
		{"description", form.Description, "max=2000"},
		{"mission", form.Mission, "max=1000"},
		{"vision", form.Vision, "max=1000"},
		{"address", form.Address, "max=255"},
	}
	for _, f := range fields {
		if err := checkField(f.name, f.value, f.tag); err != nil {
			return nil, err
		}
	}

	links, err := decodeContactLinks(form.ContactLinks)
	if err != nil {
		return nil, err
	}
	return &domain.CompanyProfileUpdate{
		Description:  form.Description,
		Mission:      form.Mission,
		Vision:       form.Vision,
		Address:      form.Address,
		ContactLinks: links,
	}, nil
}
