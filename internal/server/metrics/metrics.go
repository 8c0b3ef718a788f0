// Package metrics объявляет метрики Prometheus реестра.
//
// Метрики регистрируются в реестре по умолчанию через promauto при импорте пакета
// и отдаются на observability.metrics.path, если метрики включены.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mars_registry"

// HTTPRequestsTotal — число запросов.
// Labels: method, route (шаблон chi, например /edit_job/{id}), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration — длительность обработки запроса.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthEventsTotal — входы, выходы и регистрации.
// Labels:
//   - event: login|logout|register
//   - result: ok|rejected|error
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events by result.",
	},
	[]string{"event", "result"},
)

// RecordWritesTotal — изменения записей.
// Labels:
//   - entity: job|department
//   - op: create|update|delete
//   - result: ok|rejected|not_found|error
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of job and department writes by operation and result.",
	},
	[]string{"entity", "op", "result"},
)

// SessionsCleanedTotal — сколько просроченных сессий удалено при старте.
var SessionsCleanedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleaned_total",
		Help:      "Total number of expired or revoked sessions removed.",
	},
)
