package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hireup_http_requests_total", Help: "Total HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hireup_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hireup_applications_submitted_total", Help: "Total job applications submitted"},
	)
	EnrollmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hireup_enrollments_created_total", Help: "Total course enrollments created"},
	)
	JobsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hireup_jobs_expired_total", Help: "Total jobs closed by the expiry sweeper"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ApplicationsSubmitted, EnrollmentsCreated, JobsExpired)
}
