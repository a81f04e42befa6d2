package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PairMetrics holds the Prometheus metrics for the pair module
type PairMetrics struct {
	PairsCreated prometheus.Counter

	SwapsTotal    prometheus.Counter
	LiquidityOps  *prometheus.CounterVec
	ReserveSyncs  prometheus.Counter
	LockConflicts prometheus.Counter
}

var (
	pairMetricsOnce sync.Once
	pairMetrics     *PairMetrics
)

// NewPairMetrics creates and registers pair metrics (singleton pattern)
func NewPairMetrics() *PairMetrics {
	pairMetricsOnce.Do(func() {
		pairMetrics = &PairMetrics{
			PairsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pairswap",
					Subsystem: "pair",
					Name:      "pairs_created_total",
					Help:      "Total number of pairs created",
				},
			),
			SwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pairswap",
					Subsystem: "pair",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
			),
			LiquidityOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pairswap",
					Subsystem: "pair",
					Name:      "liquidity_operations_total",
					Help:      "Total liquidity operations by kind",
				},
				[]string{"operation"},
			),
			ReserveSyncs: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pairswap",
					Subsystem: "pair",
					Name:      "reserve_syncs_total",
					Help:      "Total reserve snapshot updates",
				},
			),
			LockConflicts: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "pairswap",
					Subsystem: "pair",
					Name:      "lock_conflicts_total",
					Help:      "Reentrancy lock acquisition failures",
				},
			),
		}
	})
	return pairMetrics
}

// GetPairMetrics returns the singleton pair metrics instance
func GetPairMetrics() *PairMetrics {
	if pairMetrics == nil {
		return NewPairMetrics()
	}
	return pairMetrics
}

func observeSwap() {
	GetPairMetrics().SwapsTotal.Inc()
}

func observeLiquidityOp(op string) {
	GetPairMetrics().LiquidityOps.WithLabelValues(op).Inc()
}

func observePairCreated() {
	GetPairMetrics().PairsCreated.Inc()
}

func observeReserveSync() {
	GetPairMetrics().ReserveSyncs.Inc()
}

func observeLockConflict() {
	GetPairMetrics().LockConflicts.Inc()
}
