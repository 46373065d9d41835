package usecase

import (
	"context"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/database"
)

type applicationUsecase struct {
	repo        domain.ApplicationRepository
	exec        BatchExecutor
	userLocator domain.AssetLocator
	newID       database.IDGenerator
}

// NewApplicationUsecase creates a new application usecase. Writes run as
// batches on exec, the same executor profile synchronization uses.
func NewApplicationUsecase(
	repo domain.ApplicationRepository,
	exec BatchExecutor,
	userLocator domain.AssetLocator,
	newID database.IDGenerator,
) domain.ApplicationUsecase {
	if newID == nil {
		newID = database.NewUUID
	}
	return &applicationUsecase{repo: repo, exec: exec, userLocator: userLocator, newID: newID}
}

// Apply registers the user as an applicant of an open vacancy.
func (uc *applicationUsecase) Apply(ctx context.Context, userID, vacancyID string, form *domain.ApplicationForm) (string, error) {
	vacancy, err := uc.repo.Vacancy(ctx, vacancyID)
	if err != nil {
		return "", readError(err, "Vacancy not found")
	}
	if !vacancy.AcceptsApplications {
		return "", apperror.Conflict("This vacancy no longer accepts applications")
	}

	id := uc.newID()
	err = uc.exec.Execute(ctx, uc.repo.ApplicationBatch(id, vacancyID, userID, form, time.Now().UTC()))
	if err != nil {
		return "", writeError(err, "Vacancy not found", "You have already applied to this vacancy")
	}
	return id, nil
}

func (uc *applicationUsecase) Applicants(ctx context.Context, companyID, vacancyID string) ([]domain.Applicant, error) {
	if _, err := uc.ownedVacancy(ctx, companyID, vacancyID); err != nil {
		return nil, err
	}
	applicants, err := uc.repo.Applicants(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	for i := range applicants {
		uc.resolvePicture(&applicants[i])
	}
	return applicants, nil
}

func (uc *applicationUsecase) ContactedApplicants(ctx context.Context, companyID, vacancyID string) ([]domain.ContactedApplicant, error) {
	if _, err := uc.ownedVacancy(ctx, companyID, vacancyID); err != nil {
		return nil, err
	}
	contacted, err := uc.repo.ContactedApplicants(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	for i := range contacted {
		uc.resolvePicture(&contacted[i].Applicant)
	}
	return contacted, nil
}

func (uc *applicationUsecase) FormAnswers(ctx context.Context, companyID, applicationID string) (*domain.ApplicationForm, error) {
	if err := uc.ownedApplication(ctx, companyID, applicationID); err != nil {
		return nil, err
	}
	form, err := uc.repo.FormAnswers(ctx, applicationID)
	if err != nil {
		return nil, readError(err, "Application not found")
	}
	return form, nil
}

// ScheduleInterview opens the interview notes of an application and
// returns their id. An application has at most one interview.
func (uc *applicationUsecase) ScheduleInterview(ctx context.Context, companyID, applicationID string) (string, error) {
	if err := uc.ownedApplication(ctx, companyID, applicationID); err != nil {
		return "", err
	}

	id := uc.newID()
	if err := uc.exec.Execute(ctx, uc.repo.InterviewBatch(id, applicationID)); err != nil {
		return "", writeError(err, "Application not found", "An interview is already scheduled for this application")
	}
	return id, nil
}

func (uc *applicationUsecase) InterviewNotes(ctx context.Context, companyID, notesID string) (*domain.InterviewNotes, error) {
	if err := uc.ownedNotes(ctx, companyID, notesID); err != nil {
		return nil, err
	}
	notes, err := uc.repo.InterviewNotes(ctx, notesID)
	if err != nil {
		return nil, readError(err, "Interview notes not found")
	}
	return notes, nil
}

func (uc *applicationUsecase) UpdateInterviewNotes(ctx context.Context, companyID, notesID, notes string) error {
	if err := uc.ownedNotes(ctx, companyID, notesID); err != nil {
		return err
	}
	return writeError(uc.exec.Execute(ctx, uc.repo.NotesBatch(notesID, notes)), "Interview notes not found", "")
}

// RegisterNewHires hires the users for the vacancy's position in a single
// bulk insertion.
func (uc *applicationUsecase) RegisterNewHires(ctx context.Context, companyID, vacancyID string, userIDs []string) ([]domain.HireRejection, error) {
	vacancy, err := uc.ownedVacancy(ctx, companyID, vacancyID)
	if err != nil {
		return nil, err
	}

	userIDs = uniqueIDs(userIDs)
	if len(userIDs) == 0 {
		return nil, apperror.BadRequest("At least one user is required")
	}

	rejections, err := uc.repo.HireRejections(ctx, userIDs)
	if err != nil {
		return nil, readError(err, "User not found")
	}
	if len(rejections) > 0 {
		return rejections, nil
	}

	batch := uc.repo.HiresBatch(companyID, vacancy.Position, userIDs, time.Now().UTC())
	if err := uc.exec.Execute(ctx, batch); err != nil {
		return nil, writeError(err, "User not found", "One of the users was hired in the meantime")
	}
	return nil, nil
}

func (uc *applicationUsecase) ownedVacancy(ctx context.Context, companyID, vacancyID string) (*domain.VacancyScope, error) {
	vacancy, err := uc.repo.Vacancy(ctx, vacancyID)
	if err != nil {
		return nil, readError(err, "Vacancy not found")
	}
	if vacancy.CompanyID != companyID {
		return nil, apperror.Forbidden("You can only manage applications to your own vacancies")
	}
	return vacancy, nil
}

func (uc *applicationUsecase) ownedApplication(ctx context.Context, companyID, applicationID string) error {
	owner, err := uc.repo.ApplicationOwner(ctx, applicationID)
	if err != nil {
		return readError(err, "Application not found")
	}
	if owner != companyID {
		return apperror.Forbidden("You can only manage applications to your own vacancies")
	}
	return nil
}

func (uc *applicationUsecase) ownedNotes(ctx context.Context, companyID, notesID string) error {
	owner, err := uc.repo.NotesOwner(ctx, notesID)
	if err != nil {
		return readError(err, "Interview notes not found")
	}
	if owner != companyID {
		return apperror.Forbidden("You can only manage applications to your own vacancies")
	}
	return nil
}

func (uc *applicationUsecase) resolvePicture(a *domain.Applicant) {
	if a.ProfilePicture != "" {
		a.ProfilePicture = uc.userLocator.URL(a.ProfilePicture)
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
