package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FetchRetries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govgoose_fetch_retries_total",
	Help: "Total number of failed fetch attempts that were retried or gave up",
}, []string{"host"})

var GeocodingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govgoose_geocoding_requests_total",
	Help: "Total number of geocoding lookups by outcome",
}, []string{"outcome"})
