package publish

import (
	"context"
	"strconv"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

type notifier func(subject string, body []byte, msgID string) error

// NatsSink notifies subscribers that a new snapshot is available. The
// snapshot JSON is the message body.
type NatsSink struct {
	notify  notifier
	subject string
}

// NewNatsSink publishes through JetStream when js is non-nil, deduplicating
// by snapshot digest, and through core NATS otherwise.
func NewNatsSink(nc *nats.Conn, js nats.JetStreamContext, subject string) *NatsSink {
	notify := func(subject string, body []byte, _ string) error {
		return nc.Publish(subject, body)
	}
	if js != nil {
		notify = func(subject string, body []byte, msgID string) error {
			_, err := js.Publish(subject, body, nats.MsgId(msgID))
			return err
		}
	}
	return &NatsSink{notify: notify, subject: subject}
}

func (s *NatsSink) Name() string { return "nats" }

func (s *NatsSink) Publish(ctx context.Context, a *Artifacts) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.notify(s.subject, a.body, strconv.FormatUint(a.digest, 16)); err != nil {
		return errors.Wrapf(err, "failed to publish on %s", s.subject)
	}
	return nil
}
