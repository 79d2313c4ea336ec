package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngagementOps counts engagement mutations by operation and outcome.
// Outcome is one of "ok", "conflict", "not_found", "forbidden",
// "validation" or "error".
var EngagementOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "melodix_engagement_operations_total",
		Help: "Engagement operations processed, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// SearchStage counts which stage produced each per-type search result set.
// Stage is "text", "substring" or "empty".
var SearchStage = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "melodix_search_stage_total",
		Help: "Search result sets served, by content type and resolving stage.",
	},
	[]string{"type", "stage"},
)

// CounterRollbacks counts compensating record rollbacks taken after a failed
// counter delta. A non-zero rate here means the store is misbehaving.
var CounterRollbacks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "melodix_counter_rollbacks_total",
		Help: "Compensating rollbacks performed after counter delta failures.",
	},
	[]string{"operation"},
)
