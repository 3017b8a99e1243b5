// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the compliance
// service: request counters, judge retry/latency tracking, and per-document
// chunk counts. Metrics are exposed on /metrics; all operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "aleutian"
const complianceSubsystem = "compliance"

// ComplianceMetrics holds all Prometheus metrics for compliance checks.
// Initialize once at startup via InitMetrics().
type ComplianceMetrics struct {
	// RequestsTotal counts requests by endpoint and status.
	// Labels: endpoint (check-text, classify-text, check-logo, ...), status (success, error)
	RequestsTotal *prometheus.CounterVec

	// JudgeCallsTotal counts judge invocations by operation and outcome.
	// Labels: operation (perceive, classify, describe, analyze), status (success, error, fallback)
	JudgeCallsTotal *prometheus.CounterVec

	// JudgeLatencySeconds measures judge round-trip latency.
	// Labels: operation
	JudgeLatencySeconds *prometheus.HistogramVec

	// ChunksPerDocument measures how many chunks a document produced.
	ChunksPerDocument prometheus.Histogram
}

// DefaultMetrics is the singleton instance, set by InitMetrics(). Helper
// methods tolerate a nil receiver so library code can record without
// caring whether metrics were wired up (tests leave them unset).
var DefaultMetrics *ComplianceMetrics

// InitMetrics registers all metrics on the default registry. Call once at
// startup; calling twice panics on duplicate registration.
func InitMetrics() *ComplianceMetrics {
	DefaultMetrics = &ComplianceMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: complianceSubsystem,
				Name:      "requests_total",
				Help:      "Total requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		JudgeCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: complianceSubsystem,
				Name:      "judge_calls_total",
				Help:      "Total judge invocations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		JudgeLatencySeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: complianceSubsystem,
				Name:      "judge_latency_seconds",
				Help:      "Judge round-trip latency in seconds",
				Buckets:   []float64{0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
			},
			[]string{"operation"},
		),
		ChunksPerDocument: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: complianceSubsystem,
				Name:      "chunks_per_document",
				Help:      "Number of chunks produced per checked document",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
	}
	return DefaultMetrics
}

// RecordRequest records a completed HTTP request.
func (m *ComplianceMetrics) RecordRequest(endpoint string, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordJudgeCall records one judge invocation.
func (m *ComplianceMetrics) RecordJudgeCall(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.JudgeCallsTotal.WithLabelValues(operation, status).Inc()
	m.JudgeLatencySeconds.WithLabelValues(operation).Observe(seconds)
}

// RecordChunks records the chunk count for one document.
func (m *ComplianceMetrics) RecordChunks(n int) {
	if m == nil {
		return
	}
	m.ChunksPerDocument.Observe(float64(n))
}
