package feed

import (
	"context"
	"strings"
	"time"

	"github.com/ahmetb/go-linq/v3"
	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/observability"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

var errShortFeed = errors.New("feed returned fewer entries than required")

type Service struct {
	Repo *Repo

	feeds      map[model.Mode]string
	minEntries int
	retries    uint
	delay      time.Duration
	now        func() time.Time
}

func NewService(conf *appconfig.Config, repo *Repo) *Service {
	base := strings.TrimRight(conf.FeedBaseURL, "/")
	return &Service{
		Repo: repo,
		feeds: map[model.Mode]string{
			model.ModeRegular:   base + conf.FeedRegularPath,
			model.ModeOpen:      base + conf.FeedOpenPath,
			model.ModeChallenge: base + conf.FeedChallengePath,
			model.ModeX:         base + conf.FeedXPath,
			model.ModeSalmon:    base + conf.FeedSalmonPath,
			model.ModeFest:      base + conf.FeedFestPath,
		},
		minEntries: conf.FeedMinEntries,
		retries:    conf.FeedRetryAttempts,
		delay:      conf.FeedRetryDelay,
		now:        time.Now,
	}
}

// URL returns the feed identifier configured for mode.
func (s *Service) URL(mode model.Mode) string {
	return s.feeds[mode]
}

// FetchMode fetches the feed configured for mode.
func (s *Service) FetchMode(ctx context.Context, mode model.Mode) []model.RotationEntry {
	return s.fetch(ctx, string(mode), s.URL(mode))
}

// Fetch returns the entries of the feed identified by feedID, ordered by
// start time. It never fails: an unavailable feed yields an empty slice.
func (s *Service) Fetch(ctx context.Context, feedID string) []model.RotationEntry {
	return s.fetch(ctx, feedID, feedID)
}

func (s *Service) fetch(ctx context.Context, label, u string) []model.RotationEntry {
	logger := log.With().Str("evt.name", "feed.fetch").Str("feed", label).Logger()

	if u == "" {
		logger.Error().Msg("no feed url configured")
		return []model.RotationEntry{}
	}

	var best []model.RotationEntry
	attempt := 0

	err := retry.Do(
		func() error {
			target := u
			if attempt > 0 {
				target = CacheDefeated(u, s.now())
			}
			attempt++

			body, err := s.Repo.Get(ctx, target)
			if err != nil {
				observability.FeedFetchAttempts.WithLabelValues(label, "transport_error").Inc()
				return errors.Wrap(spl3err.ErrFeedUnavailable, err.Error())
			}
			entries, err := Decode(body)
			if err != nil {
				observability.FeedFetchAttempts.WithLabelValues(label, "decode_error").Inc()
				return errors.Wrap(spl3err.ErrFeedUnavailable, err.Error())
			}
			if len(entries) > len(best) {
				best = entries
			}
			if len(entries) < s.minEntries {
				observability.FeedFetchAttempts.WithLabelValues(label, "short").Inc()
				return errShortFeed
			}
			observability.FeedFetchAttempts.WithLabelValues(label, "ok").Inc()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.retries+1),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug().Err(err).Uint("attempt", n+1).Msg("retrying feed with cache-defeat parameter")
		}),
	)

	switch {
	case err == nil:
	case errors.Is(err, errShortFeed):
		logger.Warn().Int("entries", len(best)).Int("required", s.minEntries).Msg("accepting short feed after retries")
	default:
		logger.Error().Err(err).Int("entries", len(best)).Msg("feed unavailable")
	}

	if best == nil {
		best = []model.RotationEntry{}
	}
	observability.FeedEntries.WithLabelValues(label).Set(float64(len(best)))
	return best
}

// Decode parses a feed body. Records are read from "results", or from the
// top-level array when the body has no envelope, and returned sorted by
// start time. Records without a valid window are dropped.
func Decode(body []byte) ([]model.RotationEntry, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("feed body is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	results := root.Get("results")
	if !results.IsArray() {
		if !root.IsArray() {
			return nil, errors.New("feed body has no results array")
		}
		results = root
	}

	entries := make([]model.RotationEntry, 0, len(results.Array()))
	results.ForEach(func(_, v gjson.Result) bool {
		if e, ok := Entry(v); ok {
			entries = append(entries, e)
		}
		return true
	})

	var sorted []model.RotationEntry
	linq.From(entries).
		OrderByT(func(e model.RotationEntry) int64 { return e.StartTime.UnixNano() }).
		ToSlice(&sorted)
	if sorted == nil {
		sorted = []model.RotationEntry{}
	}
	return sorted, nil
}
