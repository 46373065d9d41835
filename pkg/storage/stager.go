package storage

import (
	"context"
	"log/slog"

	"go-talent-backend/pkg/apperror"
)

// Stager puts and removes assets on behalf of the profile synchronizer.
// It has no rollback of its own: once staged, a blob stays until discarded.
type Stager struct {
	store BlobStore
	log   *slog.Logger
}

func NewStager(store BlobStore, log *slog.Logger) *Stager {
	if log == nil {
		log = slog.Default()
	}
	return &Stager{store: store, log: log}
}

// Stage stores p and returns its fresh reference.
func (s *Stager) Stage(ctx context.Context, p Payload) (string, error) {
	ref, err := s.store.Put(ctx, p)
	if err != nil {
		return "", &apperror.StorageError{Op: "put", Err: err}
	}
	s.log.Debug("asset staged", "asset_ref", ref, "bytes", len(p.Data))
	return ref, nil
}

// Supersede stages p, then tries to discard oldRef. A failed discard is
// logged and swallowed; the new reference is returned either way.
func (s *Stager) Supersede(ctx context.Context, oldRef string, p Payload) (string, error) {
	ref, err := s.Stage(ctx, p)
	if err != nil {
		return "", err
	}
	if err := s.Discard(ctx, oldRef); err != nil {
		s.log.Warn("failed to discard superseded asset", "asset_ref", oldRef, "error", err)
	}
	return ref, nil
}

// Discard deletes ref. Unknown references and "" are not errors.
func (s *Stager) Discard(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if err := s.store.Delete(ctx, ref); err != nil {
		return &apperror.StorageError{Op: "delete", Ref: ref, Err: err}
	}
	s.log.Debug("asset discarded", "asset_ref", ref)
	return nil
}
