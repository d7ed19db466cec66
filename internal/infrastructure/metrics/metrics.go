package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger engine's Prometheus metrics.
type Metrics struct {
	AccountsCreated prometheus.Counter

	EntriesDrafted  prometheus.Counter
	EntriesPosted   prometheus.Counter
	EntriesReversed prometheus.Counter
	PostingFailures *prometheus.CounterVec
	PostingDuration prometheus.Histogram

	ReportDuration *prometheus.HistogramVec

	BalanceCacheHits   prometheus.Counter
	BalanceCacheMisses prometheus.Counter
}

// New creates and registers all metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_accounts_created_total",
			Help: "Total number of ledger accounts created",
		}),

		EntriesDrafted: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_entries_drafted_total",
			Help: "Total number of draft journal entries created",
		}),
		EntriesPosted: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_entries_posted_total",
			Help: "Total number of journal entries posted",
		}),
		EntriesReversed: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_entries_reversed_total",
			Help: "Total number of journal entries reversed",
		}),
		PostingFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospledger_posting_failures_total",
				Help: "Total posting validation failures by reason",
			},
			[]string{"reason"},
		),
		PostingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hospledger_posting_duration_seconds",
			Help:    "Duration of postEntry operations",
			Buckets: prometheus.DefBuckets,
		}),

		ReportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hospledger_report_duration_seconds",
				Help:    "Duration of report computations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),

		BalanceCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_balance_cache_hits_total",
			Help: "Total balance cache hits",
		}),
		BalanceCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "hospledger_balance_cache_misses_total",
			Help: "Total balance cache misses",
		}),
	}
}
