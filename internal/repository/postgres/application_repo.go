package postgres

import (
	"context"
	"errors"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db    *pgxpool.Pool
	newID database.IDGenerator
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool, newID database.IDGenerator) domain.ApplicationRepository {
	if newID == nil {
		newID = database.NewUUID
	}
	return &applicationRepo{db: db, newID: newID}
}

func (r *applicationRepo) Vacancy(ctx context.Context, vacancyID string) (*domain.VacancyScope, error) {
	var v domain.VacancyScope
	err := r.db.QueryRow(ctx,
		`SELECT company_id, position, accepts_applications FROM vacancies WHERE id = $1`, vacancyID,
	).Scan(&v.CompanyID, &v.Position, &v.AcceptsApplications)
	if err != nil {
		return nil, noRows(err)
	}
	return &v, nil
}

func (r *applicationRepo) ApplicationOwner(ctx context.Context, applicationID string) (string, error) {
	query := `
		SELECT v.company_id
		FROM job_applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE a.id = $1`
	return r.owner(ctx, query, applicationID)
}

func (r *applicationRepo) NotesOwner(ctx context.Context, notesID string) (string, error) {
	query := `
		SELECT v.company_id
		FROM job_interview_notes n
		JOIN job_applications a ON a.id = n.job_application_id
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE n.id = $1`
	return r.owner(ctx, query, notesID)
}

func (r *applicationRepo) owner(ctx context.Context, query, id string) (string, error) {
	var companyID string
	if err := r.db.QueryRow(ctx, query, id).Scan(&companyID); err != nil {
		return "", noRows(err)
	}
	return companyID, nil
}

// Applicants lists everyone who applied to the vacancy, oldest first.
func (r *applicationRepo) Applicants(ctx context.Context, vacancyID string) ([]domain.Applicant, error) {
	query := `
		SELECT a.id, u.id, u.full_name, COALESCE(u.profile_picture, ''), to_char(a.creation_date, 'YYYY-MM-DD')
		FROM job_applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.vacancy_id = $1
		ORDER BY a.creation_date, u.full_name`

	rows, err := r.db.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := []domain.Applicant{}
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(&a.ApplicationID, &a.UserID, &a.Name, &a.ProfilePicture, &a.AppliedOn); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// ContactedApplicants lists the applicants with a scheduled interview.
func (r *applicationRepo) ContactedApplicants(ctx context.Context, vacancyID string) ([]domain.ContactedApplicant, error) {
	query := `
		SELECT a.id, u.id, u.full_name, COALESCE(u.profile_picture, ''), to_char(a.creation_date, 'YYYY-MM-DD'), n.id
		FROM job_applications a
		JOIN users u ON u.id = a.user_id
		JOIN job_interview_notes n ON n.job_application_id = a.id
		WHERE a.vacancy_id = $1
		ORDER BY a.creation_date, u.full_name`

	rows, err := r.db.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacted := []domain.ContactedApplicant{}
	for rows.Next() {
		var c domain.ContactedApplicant
		if err := rows.Scan(&c.ApplicationID, &c.UserID, &c.Name, &c.ProfilePicture, &c.AppliedOn, &c.InterviewNotesID); err != nil {
			return nil, err
		}
		contacted = append(contacted, c)
	}
	return contacted, rows.Err()
}

func (r *applicationRepo) FormAnswers(ctx context.Context, applicationID string) (*domain.ApplicationForm, error) {
	query := `
		SELECT contact_email, phone_number, highest_education_level, experience,
		       hard_skills, soft_skills, application_reason, portfolio_link
		FROM job_applications WHERE id = $1`

	var f domain.ApplicationForm
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&f.ContactEmail, &f.PhoneNumber, &f.HighestEducationLevel, &f.Experience,
		&f.HardSkills, &f.SoftSkills, &f.ApplicationReason, &f.PortfolioLink,
	)
	if err != nil {
		return nil, noRows(err)
	}
	return &f, nil
}

func (r *applicationRepo) InterviewNotes(ctx context.Context, notesID string) (*domain.InterviewNotes, error) {
	var n domain.InterviewNotes
	err := r.db.QueryRow(ctx,
		`SELECT id, job_application_id, notes FROM job_interview_notes WHERE id = $1`, notesID,
	).Scan(&n.ID, &n.ApplicationID, &n.Notes)
	if err != nil {
		return nil, noRows(err)
	}
	return &n, nil
}

func (r *applicationRepo) HireRejections(ctx context.Context, userIDs []string) ([]domain.HireRejection, error) {
	query := `
		SELECT u.id::text, EXISTS(SELECT 1 FROM employees e WHERE e.user_id = u.id AND e.is_active)
		FROM users u
		WHERE u.id = ANY($1::uuid[])`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employed := make(map[string]bool, len(userIDs))
	for rows.Next() {
		var (
			id     string
			active bool
		)
		if err := rows.Scan(&id, &active); err != nil {
			return nil, err
		}
		employed[id] = active
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var rejections []domain.HireRejection
	for _, id := range userIDs {
		active, found := employed[id]
		switch {
		case !found:
			rejections = append(rejections, domain.HireRejection{UserID: id, Reason: domain.HireRejectedNotFound})
		case active:
			rejections = append(rejections, domain.HireRejection{UserID: id, Reason: domain.HireRejectedAlreadyHired})
		}
	}
	return rejections, nil
}

func (r *applicationRepo) ApplicationBatch(applicationID, vacancyID, userID string, f *domain.ApplicationForm, now time.Time) database.Batch {
	return database.Batch{
		database.BuildInsert(jobApplicationColumns, applicationID,
			f.ContactEmail, f.PhoneNumber, f.HighestEducationLevel, f.Experience, f.HardSkills,
			f.SoftSkills, f.ApplicationReason, f.PortfolioLink, now, vacancyID, userID),
	}
}

// InterviewBatch opens empty notes for the application; their existence
// marks the interview as scheduled.
func (r *applicationRepo) InterviewBatch(notesID, applicationID string) database.Batch {
	return database.Batch{database.BuildInsert(interviewInsertColumns, notesID, "", applicationID)}
}

func (r *applicationRepo) NotesBatch(notesID, notes string) database.Batch {
	return database.Batch{database.BuildUpdate(interviewNotesColumns, notesID, notes)}
}

// HiresBatch inserts every new hire as one multi-row statement.
func (r *applicationRepo) HiresBatch(companyID, position string, userIDs []string, now time.Time) database.Batch {
	extract := func(userID string) []any {
		return []any{userID, now, position}
	}
	return database.Batch{}.Append(database.BuildBulkInsertion(employeesTable, companyID, userIDs, extract, r.newID))
}

func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
