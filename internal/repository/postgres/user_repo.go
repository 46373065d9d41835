package postgres

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db    *pgxpool.Pool
	newID database.IDGenerator
}

func NewUserRepository(db *pgxpool.Pool, newID database.IDGenerator) domain.UserRepository {
	return &userRepo{db: db, newID: newID}
}

// GetProfile reads the user row and its collections from one snapshot, so a
// concurrent replacement is seen either entirely or not at all.
func (r *userRepo) GetProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile

	err := readSnapshot(ctx, r.db, func(tx pgx.Tx) error {
		query := `SELECT id, full_name, email, country, description, COALESCE(profile_picture, '')
		          FROM users WHERE id = $1`
		err := tx.QueryRow(ctx, query, id).Scan(
			&profile.ID, &profile.FullName, &profile.Email, &profile.Country,
			&profile.Description, &profile.ProfilePicture,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		if profile.ContactLinks, err = queryContactLinks(ctx, tx,
			`SELECT platform, link FROM user_contact_links WHERE user_id = $1 ORDER BY platform`, id); err != nil {
			return err
		}

		if profile.Experience, err = r.queryExperience(ctx, tx, id); err != nil {
			return err
		}

		if profile.Skills, err = querySkills(ctx, tx,
			`SELECT skill_name FROM user_skills WHERE user_id = $1 ORDER BY skill_name`, id); err != nil {
			return err
		}

		profile.Education, err = r.queryEducation(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepo) queryExperience(ctx context.Context, tx pgx.Tx, userID string) ([]domain.ExperienceRecord, error) {
	query := `SELECT position, company, to_char(start_date, 'YYYY-MM-DD'),
	                 COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''), description
	          FROM experience_records WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.ExperienceRecord{}
	for rows.Next() {
		var rec domain.ExperienceRecord
		if err := rows.Scan(&rec.Position, &rec.Company, &rec.StartDate, &rec.EndDate, &rec.Description); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *userRepo) queryEducation(ctx context.Context, tx pgx.Tx, userID string) ([]domain.EducationRecord, error) {
	query := `SELECT title, organization, to_char(start_date, 'YYYY-MM-DD'),
	                 COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''), description
	          FROM education_records WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.EducationRecord{}
	for rows.Next() {
		var rec domain.EducationRecord
		if err := rows.Scan(&rec.Title, &rec.Organization, &rec.StartDate, &rec.EndDate, &rec.Description); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ProfileBatch sets the description, and the picture when pictureRef is not
// empty, then replaces each collection with a deletion immediately followed
// by its insertion.
func (r *userRepo) ProfileBatch(userID, pictureRef string, update *domain.UserProfileUpdate) database.Batch {
	row := database.BuildUpdate(userDescriptionColumns, userID, update.Description)
	if pictureRef != "" {
		row = database.BuildUpdate(userProfileColumns, userID, pictureRef, update.Description)
	}
	batch := database.Batch{row}

	del := database.BuildDeletion(userContactLinksTable, userID)
	batch = batch.Append(&del, database.BuildBulkInsertion(userContactLinksTable, userID, update.ContactLinks, extractContactLink, r.newID))

	del = database.BuildDeletion(experienceRecordsTable, userID)
	batch = batch.Append(&del, database.BuildBulkInsertion(experienceRecordsTable, userID, update.Experience, extractExperience, r.newID))

	del = database.BuildDeletion(userSkillsTable, userID)
	batch = batch.Append(&del, database.BuildBulkInsertion(userSkillsTable, userID, update.Skills, extractSkill, r.newID))

	del = database.BuildDeletion(educationRecordsTable, userID)
	batch = batch.Append(&del, database.BuildBulkInsertion(educationRecordsTable, userID, update.Education, extractEducation, r.newID))

	return batch
}

func (r *userRepo) RegistrationBatch(userID string, reg *domain.UserRegistration, hashedPassword string) database.Batch {
	return database.Batch{
		database.BuildInsert(userRegistrationColumns, userID,
			reg.FullName, reg.Email, hashedPassword, reg.Country, "", nil),
	}
}
