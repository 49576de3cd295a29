// Package metrics содержит прометеевские метрики шлюза.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BureauRequestsTotal считает обращения к бюро по операции и исходу.
// Исход: "success", "business_error" (бюро ответило отказом) или вид
// технического отказа ("communication", "authentication", "protocol").
var BureauRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crif_bureau_requests_total",
		Help: "Total bureau enquiries by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// BureauRequestDuration — длительность обращений к бюро по операциям.
var BureauRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "crif_bureau_request_duration_seconds",
		Help:    "Bureau enquiry duration in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)
