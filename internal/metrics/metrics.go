package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	Sessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessions,
			Help: HelpTextSessions,
		},
		[]string{LabelEvent},
	)

	Transactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransactions,
			Help: HelpTextTransactions,
		},
		[]string{LabelType},
	)

	TransactionAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransactionAmount,
			Help: HelpTextTransactionAmount,
		},
		[]string{LabelType},
	)

	PortfoliosAllocated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePortfoliosAllocated,
			Help: HelpTextPortfoliosAllocated,
		},
		[]string{LabelRiskLevel},
	)

	AllocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAllocationDuration,
			Help:    HelpTextAllocationDuration,
			Buckets: AllocationLatencyBuckets,
		},
		[]string{LabelRiskLevel},
	)

	AllocationSelected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAllocationSelected,
			Help:    HelpTextAllocationSelected,
			Buckets: AllocationSelectedBuckets,
		},
	)

	AllocationUtilization = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAllocationUtilization,
			Help:    HelpTextAllocationUtilization,
			Buckets: UtilizationBuckets,
		},
	)

	SecurityChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityChanges,
			Help: HelpTextSecurityChanges,
		},
		[]string{LabelAction},
	)
)
