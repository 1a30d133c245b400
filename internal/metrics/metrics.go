package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Team Request Metrics
var (
	// TeamRequestCreatedTotal - количество созданных заявок на формирование команды
	TeamRequestCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_request_created_total",
		Help: "Total number of team requests created",
	})

	// TeamRequestRepliesTotal - ответы участников по типу ответа
	TeamRequestRepliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_request_replies_total",
		Help: "Total number of member replies to team requests",
	}, []string{"reply"})

	// TeamRequestClosedTotal - заявки, пришедшие в терминальный статус
	TeamRequestClosedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_request_closed_total",
		Help: "Total number of team requests that reached a terminal status",
	}, []string{"status"})

	// TeamRequestPendingCount - текущее количество ожидающих заявок
	TeamRequestPendingCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "team_request_pending_count",
		Help: "Current number of pending team requests",
	})
)

// Team Metrics
var (
	// TeamMaterializedTotal - количество сформированных команд
	TeamMaterializedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_materialized_total",
		Help: "Total number of teams materialized from accepted requests",
	}, []string{"with_guide"})

	// TeamSize - распределение размера сформированных команд
	TeamSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "team_size",
		Help:    "Distribution of materialized team sizes (2-4)",
		Buckets: []float64{2, 3, 4},
	})
)

// Guide Metrics
var (
	// GuideDecisionsTotal - решения руководителей
	GuideDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_decisions_total",
		Help: "Total number of guide decisions",
	}, []string{"decision"})
)

// Project Metrics
var (
	// ProjectCreatedTotal - количество созданных проектов
	ProjectCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "project_created_total",
		Help: "Total number of projects created",
	})

	// ProjectStatusCount - проекты по статусам
	ProjectStatusCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "project_status_count",
		Help: "Number of projects by status",
	}, []string{"status"})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// HTTPResponseSize - размер ответа
	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Size of HTTP response in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// DomainErrorsTotal - доменные ошибки
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})

	// EventPublishErrorsTotal - ошибки публикации событий
	EventPublishErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_publish_errors_total",
		Help: "Total number of failed workflow event publications",
	})
)

// Service Layer Metrics
var (
	// ServiceOperationDuration - время операций сервиса
	ServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "service_operation_duration_seconds",
		Help:    "Duration of service operation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
