package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
)

// CacheDefeatParam is the query parameter added on retries so that edge
// caches cannot serve the same stale body again.
const CacheDefeatParam = "_"

// Repo performs the raw HTTP requests for feeds and images.
type Repo struct {
	client    *http.Client
	userAgent string
}

func NewRepo(conf *appconfig.Config) *Repo {
	return &Repo{
		client: &http.Client{
			Timeout: conf.FeedTimeout,
		},
		userAgent: conf.FeedUserAgent,
	}
}

// Get fetches u and returns the body of a 2xx response.
func (r *Repo) Get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", res.StatusCode, u)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// CacheDefeated returns u with a cache-defeating query parameter set to the
// given instant.
func CacheDefeated(u string, at time.Time) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	q := parsed.Query()
	q.Set(CacheDefeatParam, strconv.FormatInt(at.UnixNano(), 10))
	parsed.RawQuery = q.Encode()
	return parsed.String()
}
