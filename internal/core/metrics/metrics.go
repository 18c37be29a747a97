// Package metrics defines the Prometheus metrics exported by the gateway.
// Metrics are registered with the default registry on package init and served
// from /metrics by the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sigep"

// Outcome labels for SOAP calls.
const (
	OutcomeOK    = "ok"
	OutcomeFault = "fault"
	OutcomeError = "error"
)

// SOAPRequestsTotal counts remote operations.
// Labels:
//   - service: remote service name ("atendecliente", "rastro")
//   - operation: SOAP operation (e.g. "fechaPlpVariosServicos")
//   - outcome: ok, fault or error
var SOAPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "soap_requests_total",
		Help:      "Total number of SOAP operations invoked, by outcome.",
	},
	[]string{"service", "operation", "outcome"},
)

// SOAPRequestDuration measures round trip time of remote operations.
var SOAPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "soap_request_duration_seconds",
		Help:      "Duration of SOAP operations from request to parsed response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "operation"},
)

// BatchesClosedTotal counts PLP submissions.
// Label:
//   - result: "closed", "invalid_document" or "remote_error"
var BatchesClosedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plp_batches_total",
		Help:      "Total number of PLP batch submissions, by result.",
	},
	[]string{"result"},
)

// TrackingLookupsTotal counts SRO lookups.
// Label:
//   - result: "found", "not_found" or "error"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of tracking lookups, by result.",
	},
	[]string{"result"},
)
