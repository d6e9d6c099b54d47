package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.MessageAppended(time.Now())
	m.MessageAppended(time.Now())
	m.ConversationCreated("direct")
	m.Delivered()
	m.Dropped()
	m.Dropped()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.Swept(7, time.Now())
	m.RPC("/messaging.v1.Messaging/AppendMessage", "OK")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.messagesAppended))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.conversationsCreated.WithLabelValues("direct")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.deliveries.WithLabelValues("delivered")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.deliveries.WithLabelValues("dropped")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessions))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.sweepDeleted))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.MessageAppended(time.Now())
		m.ConversationCreated("team")
		m.Delivered()
		m.Dropped()
		m.SessionOpened()
		m.SessionClosed()
		m.Swept(1, time.Now())
		m.RPC("m", "OK")
	})
}
