// Package metrics holds the Prometheus registry and the service's collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	NameSpace               = "guestbook"
	HTTPRequestDuration     = "http_request_duration_seconds"
	WishSubmissionsTotal    = "wish_submissions_total"
	NotificationsSentTotal  = "notifications_sent_total"
	labelOutcome            = "outcome"
	labelNotificationResult = "result"
)

type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
	WishSubmissions     *prometheus.CounterVec
	NotificationsSent   *prometheus.CounterVec

	reg *prometheus.Registry
}

// NewMetrics registers the collectors on reg, which must not be nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}

	return &Metrics{
		reg: reg,
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HTTPRequestDuration,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		WishSubmissions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      WishSubmissionsTotal,
			Help:      "Wish submissions by outcome",
		}, []string{labelOutcome}),
		NotificationsSent: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      NotificationsSentTotal,
			Help:      "Host notifications by result",
		}, []string{labelNotificationResult}),
	}
}

// New creates the process-wide registry including Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewMetrics(reg)
}

// ObserveSubmission counts one wish submission outcome.
func (m *Metrics) ObserveSubmission(outcome string) {
	m.WishSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveNotification counts one host notification result.
func (m *Metrics) ObserveNotification(result string) {
	m.NotificationsSent.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
