package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var BatchImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "govgoose_batch_import_duration_seconds",
	Help:    "Duration of batch address imports in seconds",
	Buckets: prometheus.DefBuckets,
})

var BatchImportItems = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govgoose_batch_import_items_total",
	Help: "Total number of processed batch import rows by result",
}, []string{"result"})
