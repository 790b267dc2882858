package publish

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/cache"
)

const (
	keyLatest = "latest"
	keyDigest = "digest"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, expire time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key string, value string, expire time.Duration) error
}

var _ snapshotStore = (*cache.Set)(nil)

// RedisSink stores the latest snapshot and its digest.
type RedisSink struct {
	store snapshotStore
}

func NewRedisSink(store snapshotStore) *RedisSink {
	return &RedisSink{store: store}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Publish(ctx context.Context, a *Artifacts) error {
	_, err := s.Swap(ctx, a)
	return err
}

// Swap stores the snapshot and reports whether its digest differs from the
// previously stored one.
func (s *RedisSink) Swap(ctx context.Context, a *Artifacts) (changed bool, err error) {
	prev, err := s.store.GetString(ctx, keyDigest)
	if err != nil {
		return false, errors.Wrap(err, "failed to read snapshot digest")
	}
	digest := strconv.FormatUint(a.digest, 16)

	if err := s.store.Set(ctx, keyLatest, a.Snapshot, 0); err != nil {
		return false, errors.Wrap(err, "failed to store snapshot")
	}
	if err := s.store.SetString(ctx, keyDigest, digest, 0); err != nil {
		return false, errors.Wrap(err, "failed to store snapshot digest")
	}
	return prev != digest, nil
}
