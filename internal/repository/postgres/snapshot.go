package postgres

import (
	"context"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// readSnapshot runs fn in a read-only repeatable-read transaction.
func readSnapshot(ctx context.Context, db *pgxpool.Pool, fn func(pgx.Tx) error) error {
	return pgx.BeginTxFunc(ctx, db, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func queryContactLinks(ctx context.Context, tx pgx.Tx, query string, ownerID string) ([]domain.ContactLink, error) {
	rows, err := tx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.ContactLink{}
	for rows.Next() {
		var l domain.ContactLink
		if err := rows.Scan(&l.Platform, &l.Link); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func querySkills(ctx context.Context, tx pgx.Tx, query string, ownerID string) ([]string, error) {
	rows, err := tx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	skills, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}
