package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FeedRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pictgram_feed_renders_total",
		Help: "Feed assemblies by result.",
	}, []string{"result"})

	TopicIngests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pictgram_topic_ingests_total",
		Help: "Topic submissions by result.",
	}, []string{"result"})

	ImageMaterializations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pictgram_image_materializations_total",
		Help: "Inline image reads by result (inlined, failed, skipped).",
	}, []string{"result"})

	RealtimeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pictgram_realtime_connections",
		Help: "Open websocket connections receiving topic events.",
	})
)

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
