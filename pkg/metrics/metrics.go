// Package metrics exposes Prometheus collectors for the profile engine and
// the HTTP layer. Collectors are registered on an injected registry so tests
// can build isolated instances.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Synchronization outcomes.
const (
	OutcomeCommitted     = "committed"
	OutcomeCompensated   = "compensated"
	OutcomeStagingFailed = "staging_failed"
	OutcomeRejected      = "rejected"
)

// Phases in which a best-effort discard can leak a blob.
const (
	PhasePostCommit   = "post_commit"
	PhaseCompensation = "compensation"
)

// SyncMetrics counts synchronization outcomes and leaked assets.
type SyncMetrics struct {
	syncTotal      *prometheus.CounterVec
	orphanedAssets *prometheus.CounterVec
}

func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		syncTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_sync_total",
				Help: "Profile synchronizations by entity kind and outcome",
			},
			[]string{"entity", "outcome"},
		),
		orphanedAssets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_sync_orphaned_assets_total",
				Help: "Assets left in blob storage after a failed discard",
			},
			[]string{"entity", "phase"},
		),
	}
}

// Outcome records one finished synchronization. A nil receiver is a no-op.
func (m *SyncMetrics) Outcome(entity, outcome string) {
	if m == nil {
		return
	}
	m.syncTotal.WithLabelValues(entity, outcome).Inc()
}

// Orphaned records a blob that could not be discarded.
func (m *SyncMetrics) Orphaned(entity, phase string) {
	if m == nil {
		return
	}
	m.orphanedAssets.WithLabelValues(entity, phase).Inc()
}
