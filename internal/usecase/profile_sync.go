package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/metrics"
	"go-talent-backend/pkg/storage"
)

// The relational store and the blob store cannot commit atomically together,
// so profile writes follow a compensating sequence instead:
//
//	STAGING -> COMMITTING -> COMMITTED    -> DONE
//	                      -> COMPENSATING -> DONE
//
// The new asset is always staged before the batch runs and the old one is
// only discarded after the commit. A failed commit discards the new asset
// and leaves the row pointing at the old one. A failed discard leaks a blob
// but never leaves a row referencing a missing asset.
type syncState string

const (
	stateStaging      syncState = "STAGING"
	stateCommitting   syncState = "COMMITTING"
	stateCommitted    syncState = "COMMITTED"
	stateCompensating syncState = "COMPENSATING"
	stateDone         syncState = "DONE"
)

// BatchBuilder builds the full statement batch once the staged asset
// reference is known. An empty reference means no asset was staged: updates
// must leave the asset column untouched, inserts store none.
type BatchBuilder func(assetRef string) database.Batch

// SyncRequest describes one profile write.
type SyncRequest struct {
	Kind     domain.EntityKind
	EntityID string
	// Asset replaces the entity's current asset. Nil keeps it.
	Asset *storage.Payload
	Build BatchBuilder
	// Create marks a row that does not exist yet, so there is no pre-image.
	Create bool
}

// BatchExecutor runs a batch in one transaction.
type BatchExecutor interface {
	Execute(ctx context.Context, batch database.Batch) error
}

// AssetStager stores and discards blobs.
type AssetStager interface {
	Stage(ctx context.Context, p storage.Payload) (string, error)
	Discard(ctx context.Context, ref string) error
}

type ProfileSynchronizer struct {
	assets  domain.AssetRepository
	exec    BatchExecutor
	stagers map[domain.EntityKind]AssetStager
	metrics *metrics.SyncMetrics
	log     *slog.Logger
}

func NewProfileSynchronizer(
	assets domain.AssetRepository,
	exec BatchExecutor,
	stagers map[domain.EntityKind]AssetStager,
	syncMetrics *metrics.SyncMetrics,
	log *slog.Logger,
) *ProfileSynchronizer {
	if log == nil {
		log = slog.Default()
	}
	return &ProfileSynchronizer{
		assets:  assets,
		exec:    exec,
		stagers: stagers,
		metrics: syncMetrics,
		log:     log,
	}
}

// SynchronizeProfile stages the new asset, commits the batch and then
// discards whichever asset is no longer referenced.
//
// It fails with *apperror.StorageError when staging fails (no SQL runs) or
// with the executor's *apperror.TransactionError, unchanged, after the
// staged asset has been discarded. Cleanup failures are only logged.
func (s *ProfileSynchronizer) SynchronizeProfile(ctx context.Context, req SyncRequest) error {
	log := s.log.With("entity_kind", req.Kind, "entity_id", req.EntityID)
	kind := string(req.Kind)

	log.Debug("profile sync", "state", stateStaging)

	preImage := ""
	if !req.Create {
		ref, err := s.assets.CurrentAsset(ctx, req.Kind, req.EntityID)
		if err != nil {
			s.metrics.Outcome(kind, metrics.OutcomeRejected)
			return err
		}
		preImage = ref
	}

	// Without a new asset the batch never writes the asset column, so a
	// picture committed concurrently is not overwritten with preImage.
	newRef, staged := "", false
	if req.Asset != nil {
		stager, ok := s.stagers[req.Kind]
		if !ok {
			s.metrics.Outcome(kind, metrics.OutcomeRejected)
			return fmt.Errorf("no asset store for entity kind %q", req.Kind)
		}
		ref, err := stager.Stage(ctx, *req.Asset)
		if err != nil {
			log.Warn("asset staging failed", "error", err)
			s.metrics.Outcome(kind, metrics.OutcomeStagingFailed)
			return err
		}
		newRef, staged = ref, true
	}

	// From here the operation runs to COMMITTED or COMPENSATING regardless of
	// the caller going away.
	ctx = context.WithoutCancel(ctx)

	log.Debug("profile sync", "state", stateCommitting, "asset_ref", newRef)

	if err := s.exec.Execute(ctx, req.Build(newRef)); err != nil {
		log.Debug("profile sync", "state", stateCompensating, "error", err)
		if staged {
			s.discard(ctx, log, req.Kind, newRef, metrics.PhaseCompensation)
		}
		s.metrics.Outcome(kind, metrics.OutcomeCompensated)
		log.Debug("profile sync", "state", stateDone)
		return err
	}

	log.Debug("profile sync", "state", stateCommitted)
	if staged && preImage != "" && preImage != newRef {
		s.discard(ctx, log, req.Kind, preImage, metrics.PhasePostCommit)
	}
	s.metrics.Outcome(kind, metrics.OutcomeCommitted)
	log.Debug("profile sync", "state", stateDone)
	return nil
}

// Reject records a request refused before synchronization and returns err.
func (s *ProfileSynchronizer) Reject(kind domain.EntityKind, err error) error {
	s.metrics.Outcome(string(kind), metrics.OutcomeRejected)
	return err
}

func (s *ProfileSynchronizer) discard(ctx context.Context, log *slog.Logger, kind domain.EntityKind, ref, phase string) {
	if err := s.stagers[kind].Discard(ctx, ref); err != nil {
		log.Error("asset discard failed, blob orphaned", "asset_ref", ref, "phase", phase, "error", err)
		s.metrics.Orphaned(string(kind), phase)
	}
}
