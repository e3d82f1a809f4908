package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the service's Prometheus collectors. A nil *Registry is
// valid everywhere collectors are touched through its methods, which keeps
// tests free of metric plumbing.
type Registry struct {
	reg *prometheus.Registry

	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	MirrorFailures     *prometheus.CounterVec
	MetadataUnresolved prometheus.Counter
	LedgerCalls        *prometheus.CounterVec
	LedgerLatencySec   *prometheus.HistogramVec
	DroppedRecords     prometheus.Counter
	PublishedDocuments prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "chainledger_metadata_cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "chainledger_metadata_cache_misses_total"})
	mirrorFailures := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "chainledger_ipfs_mirror_failures_total"}, []string{"mirror"})
	unresolved := prometheus.NewCounter(prometheus.CounterOpts{Name: "chainledger_metadata_unresolved_total"})
	ledgerCalls := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "chainledger_ledger_calls_total"}, []string{"method", "result"})
	ledgerLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chainledger_ledger_call_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{Name: "chainledger_dropped_records_total"})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "chainledger_metadata_published_total"})

	r.MustRegister(hits, misses, mirrorFailures, unresolved, ledgerCalls, ledgerLatency, dropped, published)
	return &Registry{
		reg:                r,
		CacheHits:          hits,
		CacheMisses:        misses,
		MirrorFailures:     mirrorFailures,
		MetadataUnresolved: unresolved,
		LedgerCalls:        ledgerCalls,
		LedgerLatencySec:   ledgerLatency,
		DroppedRecords:     dropped,
		PublishedDocuments: published,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) CacheHit() {
	if r != nil {
		r.CacheHits.Inc()
	}
}

func (r *Registry) CacheMiss() {
	if r != nil {
		r.CacheMisses.Inc()
	}
}

func (r *Registry) MirrorFailed(mirror string) {
	if r != nil {
		r.MirrorFailures.WithLabelValues(mirror).Inc()
	}
}

func (r *Registry) Unresolved() {
	if r != nil {
		r.MetadataUnresolved.Inc()
	}
}

// LedgerCall records one contract call; err decides the result label.
func (r *Registry) LedgerCall(method string, seconds float64, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.LedgerCalls.WithLabelValues(method, result).Inc()
	r.LedgerLatencySec.WithLabelValues(method).Observe(seconds)
}

func (r *Registry) Dropped(n int) {
	if r != nil && n > 0 {
		r.DroppedRecords.Add(float64(n))
	}
}

func (r *Registry) Published() {
	if r != nil {
		r.PublishedDocuments.Inc()
	}
}
