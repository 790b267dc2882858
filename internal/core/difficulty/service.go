package difficulty

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

type Service struct {
	Repo *Repo

	source string
	policy Policy

	once  sync.Once
	table Table
}

func NewService(conf *appconfig.Config, repo *Repo) *Service {
	return &Service{
		Repo:   repo,
		source: conf.WeaponRankSource,
		policy: PolicyFromConfig(conf),
	}
}

// Table returns the rating table, loading it on first use. A table that
// cannot be loaded is treated as empty, which rates every regular loadout
// as unknown.
func (s *Service) Table(ctx context.Context) Table {
	s.once.Do(func() {
		table, err := s.Repo.Load(ctx, s.source)
		if err != nil {
			log.Warn().Err(err).Str("evt.name", "difficulty.table").Str("source", s.source).
				Msg("weapon rating table unavailable, regular loadouts will be rated unknown")
			table = Table{}
		}
		s.table = table
	})
	return s.table
}

// Rank scores a loadout against the run's rating table.
func (s *Service) Rank(ctx context.Context, weapons []string) model.DifficultyRank {
	rank, err := Rate(weapons, s.Table(ctx), s.policy)
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "difficulty.rank").Strs("weapons", weapons).Msg("loadout rated unknown")
		return rank
	}
	log.Debug().Str("evt.name", "difficulty.rank").Strs("weapons", weapons).Str("rank", string(rank)).Msg("rated loadout")
	return rank
}

// PatchFile rates the loadout found in the snapshot at path against the
// table at source and writes the rank back into the snapshot. A snapshot
// without a loadout is rated unknown.
func (s *Service) PatchFile(ctx context.Context, path, source string) (model.DifficultyRank, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return model.RankUnknown, errors.Wrapf(err, "failed to read snapshot %s", path)
	}

	table, err := s.Repo.Load(ctx, source)
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "difficulty.table").Str("source", source).Msg("weapon rating table unavailable")
		table = Table{}
	}

	weapons := ExtractWeapons(doc)
	rank, err := Rate(weapons, table, s.policy)
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "difficulty.patch").Strs("weapons", weapons).Msg("loadout rated unknown")
	}

	out, err := Patch(doc, rank)
	if err != nil {
		return rank, err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return rank, errors.Wrapf(err, "failed to write snapshot %s", path)
	}

	log.Info().Str("evt.name", "difficulty.patch").Str("path", path).Strs("weapons", weapons).Str("rank", string(rank)).Msg("snapshot rated")
	return rank, nil
}
