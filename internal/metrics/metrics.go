// Package metrics exposes the Prometheus collectors served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route, and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campustrack_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campustrack_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SignIns counts authentication attempts by outcome.
	SignIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campustrack_signins_total",
		Help: "Sign-in attempts by outcome.",
	}, []string{"outcome"})

	// AttendanceSaves counts replace-for-date operations by outcome.
	AttendanceSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campustrack_attendance_saves_total",
		Help: "Attendance day-save operations by outcome.",
	}, []string{"outcome"})

	// AttendanceRecordsSaved counts individual records written by day saves.
	AttendanceRecordsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campustrack_attendance_records_saved_total",
		Help: "Attendance records persisted by day saves.",
	})
)
