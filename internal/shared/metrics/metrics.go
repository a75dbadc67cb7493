package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	optimizeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "optimize_requests_total",
		Help: "Total settings recommendations computed",
	})
	diagnoseTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diagnose_requests_total",
		Help: "Total defect diagnoses computed",
	})

	optimizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimize_duration_seconds",
		Help:    "Settings recommendation compute time",
		Buckets: prometheus.DefBuckets,
	})
	diagnoseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "diagnose_duration_seconds",
		Help:    "Defect diagnosis compute time",
		Buckets: prometheus.DefBuckets,
	})
)

// IncOptimize increments the optimize counter.
func IncOptimize() {
	optimizeTotal.Inc()
}

// IncDiagnose increments the diagnose counter.
func IncDiagnose() {
	diagnoseTotal.Inc()
}

// ObserveOptimizeDuration records one optimize call's compute time.
func ObserveOptimizeDuration(d time.Duration) {
	optimizeDuration.Observe(d.Seconds())
}

// ObserveDiagnoseDuration records one diagnose call's compute time.
func ObserveDiagnoseDuration(d time.Duration) {
	diagnoseDuration.Observe(d.Seconds())
}

// Handler exposes the Prometheus registry in text format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
