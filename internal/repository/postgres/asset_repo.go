package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type assetRepo struct {
	db      *pgxpool.Pool
	queries map[domain.EntityKind]string
}

func NewAssetRepository(db *pgxpool.Pool) domain.AssetRepository {
	queries := make(map[domain.EntityKind]string, len(assetColumns))
	for kind, a := range assetColumns {
		selected := "''"
		if a.column != "" {
			selected = fmt.Sprintf("COALESCE(%s, '')", pq.QuoteIdentifier(a.column))
		}
		queries[kind] = fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
			selected, pq.QuoteIdentifier(a.entity.Name()), pq.QuoteIdentifier(a.entity.KeyColumn()))
	}
	return &assetRepo{db: db, queries: queries}
}

func (r *assetRepo) CurrentAsset(ctx context.Context, kind domain.EntityKind, id string) (string, error) {
	query, ok := r.queries[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}

	var ref string
	if err := r.db.QueryRow(ctx, query, id).Scan(&ref); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return ref, nil
}
