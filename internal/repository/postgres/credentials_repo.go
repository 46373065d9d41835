package postgres

import (
	"context"
	"errors"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type credentialsRepo struct {
	db *pgxpool.Pool
}

func NewCredentialsRepository(db *pgxpool.Pool) domain.CredentialsRepository {
	return &credentialsRepo{db: db}
}

// FindByEmail tries users first, then company admins.
func (r *credentialsRepo) FindByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	creds := domain.Credentials{Type: auth.SubjectUser}
	err := r.db.QueryRow(ctx, `SELECT id, hashed_password FROM users WHERE email = $1`, email).
		Scan(&creds.ID, &creds.HashedPassword)
	if err == nil {
		return &creds, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	creds = domain.Credentials{Type: auth.SubjectCompany}
	err = r.db.QueryRow(ctx, `SELECT id, hashed_admin_password FROM companies WHERE admin_email = $1`, email).
		Scan(&creds.ID, &creds.HashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &creds, nil
}
