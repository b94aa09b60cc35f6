package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hvacdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hvacdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Invoice lifecycle metrics
	InvoiceOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hvacdesk_invoice_operations_total",
			Help: "Total number of invoice operations by type and outcome",
		},
		[]string{"operation", "outcome"},
	)

	PaymentsRecordedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hvacdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
	)

	PDFGeneratedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hvacdesk_pdf_generated_total",
			Help: "Total number of PDF documents generated",
		},
		[]string{"type"},
	)
)
