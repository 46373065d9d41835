package usecase

import (
	"context"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/database"
)

type vacancyUsecase struct {
	repo           domain.VacancyRepository
	sync           *ProfileSynchronizer
	companyLocator domain.AssetLocator
	newID          database.IDGenerator
}

func NewVacancyUsecase(
	repo domain.VacancyRepository,
	sync *ProfileSynchronizer,
	companyLocator domain.AssetLocator,
	newID database.IDGenerator,
) domain.VacancyUsecase {
	if newID == nil {
		newID = database.NewUUID
	}
	return &vacancyUsecase{repo: repo, sync: sync, companyLocator: companyLocator, newID: newID}
}

// Post inserts the vacancy and its skills in one transaction.
func (uc *vacancyUsecase) Post(ctx context.Context, companyID string, draft *domain.VacancyDraft) (string, error) {
	if err := normalizeSkills(draft); err != nil {
		return "", uc.sync.Reject(domain.EntityVacancy, err)
	}

	id := uc.newID()
	now := time.Now().UTC()
	err := uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityVacancy,
		EntityID: id,
		Create:   true,
		Build: func(string) database.Batch {
			return uc.repo.PostBatch(id, companyID, draft, now)
		},
	})
	if err != nil {
		return "", writeError(err, "Vacancy not found", "")
	}
	return id, nil
}

// Update rewrites the vacancy and replaces its skills. Only the posting
// company may edit it.
func (uc *vacancyUsecase) Update(ctx context.Context, companyID, vacancyID string, draft *domain.VacancyDraft) error {
	if err := uc.authorize(ctx, companyID, vacancyID); err != nil {
		return uc.sync.Reject(domain.EntityVacancy, err)
	}
	if err := normalizeSkills(draft); err != nil {
		return uc.sync.Reject(domain.EntityVacancy, err)
	}

	err := uc.sync.SynchronizeProfile(ctx, SyncRequest{
		Kind:     domain.EntityVacancy,
		EntityID: vacancyID,
		Build: func(string) database.Batch {
			return uc.repo.UpdateBatch(vacancyID, draft)
		},
	})
	return writeError(err, "Vacancy not found", "")
}

func (uc *vacancyUsecase) Details(ctx context.Context, vacancyID string) (*domain.VacancyDetails, error) {
	details, err := uc.repo.GetDetails(ctx, vacancyID)
	if err != nil {
		return nil, readError(err, "Vacancy not found")
	}
	if details.CompanyProfilePicture != "" {
		details.CompanyProfilePicture = uc.companyLocator.URL(details.CompanyProfilePicture)
	}
	return details, nil
}

func (uc *vacancyUsecase) CompanyVacancies(ctx context.Context, companyID string, page, pageSize int) ([]domain.VacancySummary, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return uc.repo.ListByCompany(ctx, companyID, limit, offset)
}

// Search lists vacancies still accepting applications.
func (uc *vacancyUsecase) Search(ctx context.Context, filter *domain.VacancySearch, page, pageSize int) ([]domain.VacancySummary, int64, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = domain.VacancyOrderCreationDate
	}
	filter.OrderDirection = strings.ToUpper(filter.OrderDirection)
	if filter.OrderDirection == "" {
		filter.OrderDirection = "DESC"
	}

	limit, offset := normalizePage(page, pageSize)
	return uc.repo.Search(ctx, filter, limit, offset)
}

func (uc *vacancyUsecase) Close(ctx context.Context, companyID, vacancyID string) error {
	if err := uc.authorize(ctx, companyID, vacancyID); err != nil {
		return err
	}
	return readError(uc.repo.Close(ctx, vacancyID), "Vacancy not found")
}

func (uc *vacancyUsecase) authorize(ctx context.Context, companyID, vacancyID string) error {
	owner, err := uc.repo.Owner(ctx, vacancyID)
	if err != nil {
		return readError(err, "Vacancy not found")
	}
	if owner != companyID {
		return apperror.Forbidden("You can only manage your own vacancies")
	}
	return nil
}

// normalizeSkills trims every skill and drops duplicates before validation.
func normalizeSkills(draft *domain.VacancyDraft) error {
	seen := make(map[string]bool, len(draft.Skills))
	skills := make([]string, 0, len(draft.Skills))
	for _, s := range draft.Skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, s)
	}
	draft.Skills = skills
	return validateSkills("skills", skills)
}
