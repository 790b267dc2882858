package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

const (
	ServiceName = "spl3board"
)

// Registry holds the metrics of one run. It is pushed once at the end of
// the run rather than scraped.
var Registry = prometheus.NewRegistry()

var (
	FeedFetchAttempts = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "feed", "fetch_attempts_total"),
		Help: "Feed fetch attempts by feed and outcome",
	}, []string{"feed", "outcome"})
	FeedEntries = promauto.With(Registry).NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "feed", "entries"),
		Help: "Entries accepted from the last fetch of a feed",
	}, []string{"feed"})
	RenderDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "render", "duration_seconds"),
		Help:    "Duration of board rendering in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
	AssetsSkipped = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "render", "assets_skipped_total"),
		Help: "Image assets skipped because they could not be resolved",
	}, []string{"kind"})
	SinkPublishes = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "publish", "total"),
		Help: "Artifact publications by sink and outcome",
	}, []string{"sink", "outcome"})
)

// Push sends the run's metrics to a pushgateway. An empty URL disables it.
func Push(url string) {
	if url == "" {
		return
	}
	err := push.New(url, ServiceName).Gatherer(Registry).Push()
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "metrics.push").Msg("failed to push metrics")
	}
}
