package difficulty

import (
	"context"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
)

// Repo loads the weapon rating table from a file path or an http(s) URL.
type Repo struct {
	HTTP *feed.Repo
}

func NewRepo(httpRepo *feed.Repo) *Repo {
	return &Repo{HTTP: httpRepo}
}

func (r *Repo) Load(ctx context.Context, source string) (Table, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = r.HTTP.Get(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read weapon rating table from %s", source)
	}
	return DecodeTable(body)
}

func DecodeTable(body []byte) (Table, error) {
	var table Table
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, errors.Wrap(err, "failed to decode weapon rating table")
	}
	if table == nil {
		table = Table{}
	}
	return table, nil
}
