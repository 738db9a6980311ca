package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics は Prometheus メトリクスのヘルパー構造体である。
// RED メソッド（Rate, Errors, Duration）の HTTP メトリクスに加え、
// 認可判定の結果別カウンターを提供する。
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AuthzDecisionsTotal *prometheus.CounterVec
}

// NewMetrics は Prometheus メトリクスを初期化して返す。
// serviceName はメトリクスの service ラベルに使用される。
func NewMetrics(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Histogram of HTTP request latency",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "authz_decisions_total",
				Help:        "Total number of authorization decisions",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"decision", "reason"},
		),
	}

	prometheus.MustRegister(m.HTTPRequestsTotal)
	prometheus.MustRegister(m.HTTPRequestDuration)
	prometheus.MustRegister(m.AuthzDecisionsTotal)

	return m
}

// RecordDecision は認可判定の結果をカウントする。
func (m *Metrics) RecordDecision(allowed bool, reason string) {
	decision := "denied"
	if allowed {
		decision = "allowed"
	}
	m.AuthzDecisionsTotal.WithLabelValues(decision, reason).Inc()
}

// MetricsHandler は /metrics エンドポイント用の HTTP ハンドラを返す。
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
