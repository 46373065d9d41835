package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Search ordering is resolved through these maps only.
var (
	vacancyOrderColumns = map[string]string{
		domain.VacancyOrderCreationDate: "v.creation_date",
		domain.VacancyOrderPosition:     "v.position",
		domain.VacancyOrderCompany:      "c.name",
	}
	vacancyOrderDirections = map[string]string{
		"ASC":  "ASC",
		"DESC": "DESC",
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type vacancyRepo struct {
	db    *pgxpool.Pool
	newID database.IDGenerator
}

func NewVacancyRepository(db *pgxpool.Pool, newID database.IDGenerator) domain.VacancyRepository {
	return &vacancyRepo{db: db, newID: newID}
}

func (r *vacancyRepo) GetDetails(ctx context.Context, id string) (*domain.VacancyDetails, error) {
	var v domain.VacancyDetails

	err := readSnapshot(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			SELECT v.id, v.company_id, v.position, v.office_address, v.work_modality, v.work_days,
			       v.daily_schedule, v.description, to_char(v.creation_date, 'YYYY-MM-DD'),
			       v.accepts_applications, c.name, COALESCE(c.profile_picture, '')
			FROM vacancies v
			JOIN companies c ON c.id = v.company_id
			WHERE v.id = $1`

		err := tx.QueryRow(ctx, query, id).Scan(
			&v.ID, &v.CompanyID, &v.Position, &v.OfficeAddress, &v.WorkModality, &v.WorkDays,
			&v.DailySchedule, &v.Description, &v.CreationDate,
			&v.AcceptsApplications, &v.CompanyName, &v.CompanyProfilePicture,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		v.Skills, err = querySkills(ctx, tx,
			`SELECT skill_name FROM vacancy_skills WHERE vacancy_id = $1 ORDER BY skill_name`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepo) Owner(ctx context.Context, id string) (string, error) {
	var companyID string
	err := r.db.QueryRow(ctx, `SELECT company_id FROM vacancies WHERE id = $1`, id).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return companyID, nil
}

func (r *vacancyRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.VacancySummary, int64, error) {
	query := `SELECT id, position, office_address, CURRENT_DATE - creation_date
              FROM vacancies WHERE company_id = $1 ORDER BY creation_date DESC, position LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vacancies := []domain.VacancySummary{}
	for rows.Next() {
		var v domain.VacancySummary
		if err := rows.Scan(&v.ID, &v.Position, &v.Location, &v.DaysAgo); err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vacancies WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return vacancies, total, nil
}

// Search lists open vacancies whose position, location and company name
// contain the given fragments.
func (r *vacancyRepo) Search(ctx context.Context, filter *domain.VacancySearch, limit, offset int) ([]domain.VacancySummary, int64, error) {
	orderColumn, ok := vacancyOrderColumns[filter.OrderBy]
	if !ok {
		orderColumn = vacancyOrderColumns[domain.VacancyOrderCreationDate]
	}
	direction, ok := vacancyOrderDirections[strings.ToUpper(filter.OrderDirection)]
	if !ok {
		direction = "DESC"
	}

	where := `
		FROM vacancies v
		JOIN companies c ON c.id = v.company_id
		WHERE v.accepts_applications
		  AND v.position ILIKE $1
		  AND v.office_address ILIKE $2
		  AND c.name ILIKE $3`
	args := []any{containsPattern(filter.Position), containsPattern(filter.Location), containsPattern(filter.Company)}

	query := fmt.Sprintf(`SELECT v.id, v.position, c.name, v.office_address, CURRENT_DATE - v.creation_date %s
		ORDER BY %s %s, v.id LIMIT $4 OFFSET $5`, where, orderColumn, direction)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vacancies := []domain.VacancySummary{}
	for rows.Next() {
		var v domain.VacancySummary
		if err := rows.Scan(&v.ID, &v.Position, &v.Company, &v.Location, &v.DaysAgo); err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return vacancies, total, nil
}

func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

func (r *vacancyRepo) Close(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `UPDATE vacancies SET accepts_applications = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PostBatch inserts the vacancy and its skills. No skills means no
// insertion statement at all.
func (r *vacancyRepo) PostBatch(vacancyID, companyID string, draft *domain.VacancyDraft, now time.Time) database.Batch {
	insert := database.BuildInsert(vacancyInsertColumns, vacancyID,
		companyID, draft.Position, draft.OfficeAddress, draft.WorkModality, draft.WorkDays,
		draft.DailySchedule, draft.Description, now, true)

	return database.Batch{}.Append(&insert,
		database.BuildBulkInsertion(vacancySkillsTable, vacancyID, draft.Skills, extractSkill, r.newID))
}

func (r *vacancyRepo) UpdateBatch(vacancyID string, draft *domain.VacancyDraft) database.Batch {
	update := database.BuildUpdate(vacancyDraftColumns, vacancyID,
		draft.Position, draft.OfficeAddress, draft.WorkModality, draft.WorkDays, draft.DailySchedule, draft.Description)
	del := database.BuildDeletion(vacancySkillsTable, vacancyID)

	return database.Batch{}.Append(&update, &del,
		database.BuildBulkInsertion(vacancySkillsTable, vacancyID, draft.Skills, extractSkill, r.newID))
}
