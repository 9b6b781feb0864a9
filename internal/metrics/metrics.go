package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AuditEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_audit_events_total",
			Help: "Audit events by outcome (written, failed, dropped)",
		},
		[]string{"outcome"},
	)

	AppointmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_appointments_total",
			Help: "Appointment operations by action",
		},
		[]string{"action"},
	)

	AnalyticsCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_analytics_cache_total",
			Help: "Analytics cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)
)

// Registry holds the service collectors plus the Go runtime collectors.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		AuditEventsTotal,
		AppointmentsTotal,
		AnalyticsCacheTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}
