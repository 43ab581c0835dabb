package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder backed by Prometheus collectors.
type PrometheusRecorder struct {
	balanceCacheLookups *prometheus.CounterVec
	usersCreated        prometheus.Counter
	accountsCreated     prometheus.Counter
	balancesAdjusted    prometheus.Counter
	adjustDuration      prometheus.Histogram
}

// NewPrometheus returns a Recorder registered on the given registerer.
func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		balanceCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledgerd_balance_cache_lookups_total",
			Help: "Balance cache lookups partitioned by result.",
		}, []string{"result"}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_users_created_total",
			Help: "Users created.",
		}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_accounts_created_total",
			Help: "Accounts created.",
		}),
		balancesAdjusted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_balance_adjustments_total",
			Help: "Balance adjustments applied.",
		}),
		adjustDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerd_balance_adjust_duration_seconds",
			Help:    "Duration of balance adjustments including the audit write.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		r.balanceCacheLookups,
		r.usersCreated,
		r.accountsCreated,
		r.balancesAdjusted,
		r.adjustDuration,
	)

	return r
}

// IncBalanceCacheHit increments the cache hit counter.
func (r *PrometheusRecorder) IncBalanceCacheHit() {
	r.balanceCacheLookups.WithLabelValues("hit").Inc()
}

// IncBalanceCacheMiss increments the cache miss counter.
func (r *PrometheusRecorder) IncBalanceCacheMiss() {
	r.balanceCacheLookups.WithLabelValues("miss").Inc()
}

// IncUserCreated increments the users created counter.
func (r *PrometheusRecorder) IncUserCreated() {
	r.usersCreated.Inc()
}

// IncAccountCreated increments the accounts created counter.
func (r *PrometheusRecorder) IncAccountCreated() {
	r.accountsCreated.Inc()
}

// IncBalanceAdjusted increments the adjustments counter.
func (r *PrometheusRecorder) IncBalanceAdjusted() {
	r.balancesAdjusted.Inc()
}

// ObserveAdjustDuration records an adjustment duration.
func (r *PrometheusRecorder) ObserveAdjustDuration(duration time.Duration) {
	r.adjustDuration.Observe(duration.Seconds())
}
