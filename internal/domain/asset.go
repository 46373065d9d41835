package domain

import "context"

// EntityKind names a primary table whose profile the engine synchronizes.
type EntityKind string

const (
	EntityUser    EntityKind = "user"
	EntityCompany EntityKind = "company"
	EntityVacancy EntityKind = "vacancy"
)

// AssetRepository reads the asset reference an entity currently holds.
// It returns ErrNotFound when the entity does not exist and "" when the
// entity exists without an asset (or its kind has no asset column).
type AssetRepository interface {
	CurrentAsset(ctx context.Context, kind EntityKind, id string) (string, error)
}

// AssetLocator renders a stored asset reference as a client-facing URL.
type AssetLocator interface {
	URL(ref string) string
}
