// Package metrics holds the Prometheus collectors shared by the site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealersite",
		Name:      "upstream_requests_total",
		Help:      "site-info calls by purpose and outcome (ok, network, timeout, status, decode).",
	}, []string{"purpose", "outcome"})

	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealersite",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of site-info calls.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"purpose"})

	ConfigFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dealersite",
		Name:      "config_fallbacks_total",
		Help:      "Requests rendered with the fallback tenant config.",
	})

	GateDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealersite",
		Name:      "gate_decisions_total",
		Help:      "Tenant gate outcomes by decision and reason.",
	}, []string{"decision", "reason"})

	HTTPResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealersite",
		Name:      "http_responses_total",
		Help:      "Responses served by status code.",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamDuration, ConfigFallbacks, GateDecisions, HTTPResponses)
}
