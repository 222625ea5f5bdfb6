// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

// Package metrics defines the Prometheus instrumentation shared by the HTTP
// layer, the chat pipeline and the background workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates every collector the server registers. A single instance
// is created at startup and passed down to the components that record values.
type Metrics struct {
	// HTTPRequestsTotal counts finished HTTP requests by route, method and
	// status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency in seconds by route.
	HTTPRequestDuration *prometheus.HistogramVec

	// UpstreamRequestsTotal counts calls to external APIs (openrouter,
	// translate) by outcome (ok, error).
	UpstreamRequestsTotal *prometheus.CounterVec

	// ChatRequestsTotal counts chat turns by reply language.
	ChatRequestsTotal *prometheus.CounterVec

	// KnowledgeDocuments tracks the number of entries in the vector index.
	KnowledgeDocuments prometheus.Gauge

	// AssessmentSessionsStarted counts newly opened assessment sessions.
	AssessmentSessionsStarted prometheus.Counter
}

// New registers the medichat collectors with the given registerer and
// returns the aggregate. Pass prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medichat",
			Name:      "http_requests_total",
			Help:      "Finished HTTP requests.",
		}, []string{"route", "method", "code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medichat",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		UpstreamRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medichat",
			Name:      "upstream_requests_total",
			Help:      "Calls to external APIs.",
		}, []string{"upstream", "outcome"}),
		ChatRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medichat",
			Name:      "chat_requests_total",
			Help:      "Chat turns served.",
		}, []string{"language"}),
		KnowledgeDocuments: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "medichat",
			Name:      "knowledge_documents",
			Help:      "Entries currently held in the vector index.",
		}),
		AssessmentSessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "medichat",
			Name:      "assessment_sessions_started_total",
			Help:      "Assessment sessions opened.",
		}),
	}
}

// NewNop returns metrics bound to a throwaway registry. Used in tests and in
// the terminal client, where nothing scrapes them.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
