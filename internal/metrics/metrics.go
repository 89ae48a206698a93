// Package metrics holds Prometheus instruments used across the app.  All
// collectors are registered with the global registry, so importing this
// package in cmd/folio is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PageRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_page_render_total",
			Help: "Public page renders by page name.",
		}, []string{"page"})

	PageRenderErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_page_render_errors_total",
			Help: "Public page renders that fell back to default copy.",
		})

	StoreQueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_store_query_total",
			Help: "Content-store reads by table.",
		}, []string{"table"})

	StoreCacheHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_store_cache_hit_total",
			Help: "Reads served from the keyed query cache.",
		})

	StoreCacheMissTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_store_cache_miss_total",
			Help: "Reads that had to hit the database.",
		})

	AdminMutationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_admin_mutation_total",
			Help: "Admin writes by table and operation.",
		}, []string{"table", "op"})

	SearchTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_search_total",
			Help: "Global search queries served.",
		})
)

func init() {
	prometheus.MustRegister(
		PageRenderTotal,
		PageRenderErrorsTotal,
		StoreQueryTotal,
		StoreCacheHitTotal,
		StoreCacheMissTotal,
		AdminMutationTotal,
		SearchTotal,
	)
}
