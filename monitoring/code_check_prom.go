package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CodeCheckCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "govgoose_code_check_created_amount",
	Help: "The total number of created code checks",
})

var CodeCheckDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "govgoose_code_check_deleted_amount",
	Help: "The total number of soft deleted code checks",
})

var CodeCheckExportedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govgoose_code_check_exported_amount",
	Help: "The total number of code checks written to an export",
}, []string{"format"})

var AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "govgoose_analysis_duration_seconds",
	Help:    "Duration of analysis backend calls in seconds",
	Buckets: prometheus.DefBuckets,
})

var AnalysisFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "govgoose_analysis_failed_amount",
	Help: "The total number of failed analysis runs",
})
