package usecase

import (
	"context"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/storage"
)

type userUsecase struct {
	repo    domain.UserRepository
	sync    *ProfileSynchronizer
	hasher  domain.PasswordHasher
	locator domain.AssetLocator
	newID   database.IDGenerator
}

func NewUserUsecase(
	repo domain.UserRepository,
	sync *ProfileSynchronizer,
	hasher domain.PasswordHasher,
	locator domain.AssetLocator,
	newID database.IDGenerator,
) domain.UserUsecase {
	if newID == nil {
		newID = database.NewUUID
	}
	return &userUsecase{repo: repo, sync: sync, hasher: hasher, locator: locator, newID: newID}
}

func (uc *userUsecase) Register(ctx context.Context, reg *domain.UserRegistration) (string, error) {
	hashed, err := uc.hasher.Hash(reg.Password)
	if err != nil {
		return "", apperror.Internal(err)
	}

	id := uc.newID()
	err = uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityUser,
		EntityID: id,
		Create:   true,
		Build: func(string) database.Batch {
			return uc.repo.RegistrationBatch(id, reg, hashed)
		},
	})
	if err != nil {
		return "", writeError(err, "User not found", "Email is already registered")
	}
	return id, nil
}

// UpdateProfile replaces the description and every collection of the user,
// swapping the profile picture when one is given.
func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, picture *storage.Payload, form *domain.UserProfileForm) error {
	update, err := decodeUserProfile(form)
	if err != nil {
		return uc.sync.Reject(domain.EntityUser, err)
	}
	if picture != nil {
		if _, err := storage.InspectPicture("profile_picture", *picture); err != nil {
			return uc.sync.Reject(domain.EntityUser, err)
		}
	}

	err = uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityUser,
		EntityID: userID,
		Asset:    picture,
		Build: func(pictureRef string) database.Batch {
			return uc.repo.ProfileBatch(userID, pictureRef, update)
		},
	})
	return writeError(err, "User not found", "")
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := uc.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, readError(err, "User not found")
	}
	if profile.ProfilePicture != "" {
		profile.ProfilePicture = uc.locator.URL(profile.ProfilePicture)
	}
	return profile, nil
}

func decodeUserProfile(form *domain.UserProfileForm) (*domain.UserProfileUpdate, error) {
	if err := checkField("description", form.Description, "max=1000"); err != nil {
		return nil, err
	}

	update := &domain.UserProfileUpdate{Description: form.Description}
	var err error
	if update.ContactLinks, err = decodeContactLinks(form.ContactLinks); err != nil {
		return nil, err
	}
	if update.Experience, err = decodeExperience(form.Experience); err != nil {
		return nil, err
	}
	if update.Skills, err = decodeSkills(form.Skills); err != nil {
		return nil, err
	}
	if update.Education, err = decodeEducation(form.Education); err != nil {
		return nil, err
	}
	return update, nil
}
