package schedule

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/difficulty"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

type Service struct {
	Feed       *feed.Service
	Difficulty *difficulty.Service
}

func NewService(feedService *feed.Service, difficultyService *difficulty.Service) *Service {
	return &Service{
		Feed:       feedService,
		Difficulty: difficultyService,
	}
}

// Assemble fetches every feed in turn and builds the merged board. It fails
// only when the reference feed is empty.
func (s *Service) Assemble(ctx context.Context) (*model.Board, error) {
	feeds := make(map[model.Mode][]model.RotationEntry)
	for _, mode := range []model.Mode{model.ModeRegular, model.ModeOpen, model.ModeChallenge, model.ModeX, model.ModeSalmon, model.ModeFest} {
		feeds[mode] = s.Feed.FetchMode(ctx, mode)
	}

	board, err := Combine(feeds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble board")
	}

	for i, slot := range board.Slots[model.ModeSalmon] {
		if slot.Empty() {
			board.Ranks[i] = model.RankUnknown
			continue
		}
		board.Ranks[i] = s.Difficulty.Rank(ctx, slot.WeaponNames())
	}

	log.Info().
		Str("evt.name", "schedule.assemble").
		Time("now.start", board.Timeline[model.SlotNow].Start.Time).
		Bools("fest", board.FestActive[:]).
		Str("salmon.rank", string(board.Ranks[model.SlotNow])).
		Msg("board assembled")

	return board, nil
}

// Combine builds the timeline from the regular feed, aligns every other feed
// onto it and merges festival variants into the eligible modes. The
// cooperative feed is aligned onto a grid built from its own entries.
func Combine(feeds map[model.Mode][]model.RotationEntry) (*model.Board, error) {
	timeline, err := Build(feeds[model.ModeRegular])
	if err != nil {
		return nil, err
	}

	board := &model.Board{
		Timeline: timeline,
		Slots:    make(map[model.Mode]model.Aligned, len(model.VersusModes)+1),
		Fest:     Align(feeds[model.ModeFest], timeline),
	}
	board.FestActive = FestActive(board.Fest)

	for _, mode := range model.VersusModes {
		aligned := Align(feeds[mode], timeline)
		if mode.FestEligible() {
			aligned = Merge(aligned, board.Fest, board.FestActive)
		}
		board.Slots[mode] = aligned
	}

	if coop := feeds[model.ModeSalmon]; len(coop) > 0 {
		// non-empty input cannot fail
		board.CoopTimeline, _ = Build(coop)
		board.Slots[model.ModeSalmon] = Align(coop, board.CoopTimeline)
	} else {
		log.Warn().Str("evt.name", "schedule.assemble").Msg("cooperative feed is empty")
		board.Slots[model.ModeSalmon] = model.Aligned{}
	}

	return board, nil
}
