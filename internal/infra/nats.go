package infra

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
)

const SnapshotStream = "spl3-snapshots"

// NATS connects to the notification server. Both return values are nil when
// no NATS URL is configured. A server without JetStream yields a nil
// JetStreamContext and notifications fall back to core publishing.
func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, nats.JetStreamContext, error) {
	if conf.NatsURL == "" {
		log.Debug().Str("evt.name", "infra.nats.disabled").Msg("nats sink is disabled")
		return nil, nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL,
		nats.Name("spl3board"),
		nats.Timeout(time.Second*5),
		nats.ErrorHandler(errorHandler),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			defer nc.Close()
			return nc.FlushWithContext(ctx)
		},
	})

	js, err := nc.JetStream()
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		return nc, nil, nil
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:       SnapshotStream,
		Subjects:   []string{conf.NatsSubject},
		Retention:  nats.LimitsPolicy,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		MaxMsgs:    256,
		Replicas:   1,
		Duplicates: time.Hour * 2,
	})
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to create jetstream stream: is it already created?")
	}

	return nc, js, nil
}
