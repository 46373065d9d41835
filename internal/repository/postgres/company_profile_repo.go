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

type companyRepo struct {
	db    *pgxpool.Pool
	newID database.IDGenerator
}

// NewCompanyRepository creates a new company profile repository
func NewCompanyRepository(db *pgxpool.Pool, newID database.IDGenerator) domain.CompanyRepository {
	return &companyRepo{db: db, newID: newID}
}

// GetProfile retrieves the company main data and its contact links
func (r *companyRepo) GetProfile(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	var profile domain.CompanyProfile

	err := readSnapshot(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			SELECT id, name, COALESCE(profile_picture, ''), type, commercial_sector, employee_count,
			       address, description, mission, vision
			FROM companies
			WHERE id = $1`

		err := tx.QueryRow(ctx, query, id).Scan(
			&profile.ID, &profile.Name, &profile.ProfilePicture, &profile.Type,
			&profile.CommercialSector, &profile.EmployeeCount,
			&profile.Address, &profile.Description, &profile.Mission, &profile.Vision,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		profile.ContactLinks, err = queryContactLinks(ctx, tx,
			`SELECT platform, link FROM company_contact_links WHERE company_id = $1 ORDER BY platform`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileBatch leaves the picture column alone when pictureRef is empty.
func (r *companyRepo) ProfileBatch(companyID, pictureRef string, update *domain.CompanyProfileUpdate, now time.Time) database.Batch {
	row := database.BuildUpdate(companyDetailColumns, companyID,
		update.Description, update.Mission, update.Vision, update.Address, now)
	if pictureRef != "" {
		row = database.BuildUpdate(companyProfileColumns, companyID,
			pictureRef, update.Description, update.Mission, update.Vision, update.Address, now)
	}
	batch := database.Batch{row}

	del := database.BuildDeletion(companyContactLinksTable, companyID)
	return batch.Append(&del, database.BuildBulkInsertion(companyContactLinksTable, companyID, update.ContactLinks, extractContactLink, r.newID))
}

// RegistrationBatch inserts a company with an empty profile.
func (r *companyRepo) RegistrationBatch(companyID, pictureRef string, reg *domain.CompanyRegistration, hashedPassword string, now time.Time) database.Batch {
	return database.Batch{
		database.BuildInsert(companyRegistrationColumns, companyID,
			reg.Name, reg.AdminEmail, hashedPassword, nullableRef(pictureRef), reg.Type, reg.CommercialSector,
			reg.EmployeeCount, "", "", "", "", now, now),
	}
}
