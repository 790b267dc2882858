package publish

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/cache"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/observability"
)

// Service hands the run's artifacts to every configured sink. Sink failures
// are logged and never fail the run.
type Service struct {
	// Stores run in order before the notification.
	Stores []Sink
	Notify Sink
}

// changeReporter is a store that can tell whether the snapshot changed
// since the previous run.
type changeReporter interface {
	Swap(ctx context.Context, a *Artifacts) (changed bool, err error)
}

type ServiceDeps struct {
	fx.In

	Config    *appconfig.Config
	S3Client  *s3.Client            `optional:"true"`
	Redis     *redis.Client         `optional:"true"`
	NatsConn  *nats.Conn            `optional:"true"`
	JetStream nats.JetStreamContext `optional:"true"`
}

func NewService(deps ServiceDeps) *Service {
	s := &Service{}
	if deps.S3Client != nil {
		s.Stores = append(s.Stores, NewS3Sink(deps.S3Client, deps.Config.S3Bucket, deps.Config.S3Prefix))
	}
	if deps.Redis != nil {
		s.Stores = append(s.Stores, NewRedisSink(cache.NewSet(deps.Redis, deps.Config.RedisKeyPrefix)))
	}
	if deps.NatsConn != nil {
		s.Notify = NewNatsSink(deps.NatsConn, deps.JetStream, deps.Config.NatsSubject)
	}
	return s
}

// Publish runs every store and then the notification. The notification is
// skipped when a store reports an unchanged snapshot. A store that fails to
// report counts as changed.
func (s *Service) Publish(ctx context.Context, a *Artifacts) {
	changed := true
	for _, sink := range s.Stores {
		if r, ok := sink.(changeReporter); ok {
			c, err := r.Swap(ctx, a)
			s.record(sink.Name(), err)
			if err == nil {
				changed = c
			}
			continue
		}
		s.record(sink.Name(), sink.Publish(ctx, a))
	}

	if s.Notify == nil {
		return
	}
	if !changed {
		log.Info().Str("evt.name", "publish."+s.Notify.Name()).Msg("snapshot unchanged, notification skipped")
		observability.SinkPublishes.WithLabelValues(s.Notify.Name(), "skipped").Inc()
		return
	}
	s.record(s.Notify.Name(), s.Notify.Publish(ctx, a))
}

func (s *Service) record(sink string, err error) {
	if err != nil {
		observability.SinkPublishes.WithLabelValues(sink, "error").Inc()
		log.Error().Err(err).Str("evt.name", "publish."+sink).Msg("failed to publish artifacts")
		return
	}
	observability.SinkPublishes.WithLabelValues(sink, "ok").Inc()
	log.Info().Str("evt.name", "publish."+sink).Msg("artifacts published")
}
