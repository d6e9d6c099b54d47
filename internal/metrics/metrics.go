// Package metrics holds the Prometheus collectors of the messaging server.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	messagesAppended     prometheus.Counter
	appendDuration       prometheus.Histogram
	conversationsCreated *prometheus.CounterVec
	deliveries           *prometheus.CounterVec
	sessions             prometheus.Gauge
	sweepDeleted         prometheus.Counter
	sweepDuration        prometheus.Histogram
	rpcRequests          *prometheus.CounterVec
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		messagesAppended: f.NewCounter(prometheus.CounterOpts{
			Name: "cipherchat_messages_appended_total",
			Help: "Total number of stored messages",
		}),
		appendDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cipherchat_append_duration_seconds",
			Help:    "Latency of message appends",
			Buckets: prometheus.DefBuckets,
		}),
		conversationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cipherchat_conversations_created_total",
			Help: "Total number of created conversations",
		}, []string{"type"}),
		deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cipherchat_deliveries_total",
			Help: "Delivery events handed to live sessions",
		}, []string{"result"}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "cipherchat_live_sessions",
			Help: "Number of open live sessions",
		}),
		sweepDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "cipherchat_retention_deleted_total",
			Help: "Total number of messages removed by the retention sweep",
		}),
		sweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cipherchat_retention_sweep_duration_seconds",
			Help:    "Duration of retention sweep runs",
			Buckets: prometheus.DefBuckets,
		}),
		rpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cipherchat_rpc_requests_total",
			Help: "Total number of RPC requests",
		}, []string{"method", "code"}),
	}
}

func (m *Metrics) MessageAppended(started time.Time) {
	if m == nil {
		return
	}
	m.messagesAppended.Inc()
	m.appendDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) ConversationCreated(conversationType string) {
	if m == nil {
		return
	}
	m.conversationsCreated.WithLabelValues(conversationType).Inc()
}

// Delivered counts an event handed to a session buffer.
func (m *Metrics) Delivered() {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues("delivered").Inc()
}

// Dropped counts an event discarded because a session buffer was full.
func (m *Metrics) Dropped() {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues("dropped").Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessions.Dec()
}

func (m *Metrics) Swept(deleted int64, started time.Time) {
	if m == nil {
		return
	}
	m.sweepDeleted.Add(float64(deleted))
	m.sweepDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) RPC(method, code string) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(method, code).Inc()
}
