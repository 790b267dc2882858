package snapshot

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/gametime"
)

// ScheduleSnapshot describes the current slot of every mode. Downstream
// publishers consume it as-is and never re-derive alignment or merging.
type ScheduleSnapshot struct {
	RegularStages []string `json:"regularStages" msgpack:"regularStages"`

	OpenRule   string   `json:"openRule" msgpack:"openRule"`
	OpenStages []string `json:"openStages" msgpack:"openStages"`

	ChallengeRule   string   `json:"challengeRule" msgpack:"challengeRule"`
	ChallengeStages []string `json:"challengeStages" msgpack:"challengeStages"`

	XRule   string   `json:"xRule" msgpack:"xRule"`
	XStages []string `json:"xStages" msgpack:"xStages"`

	SalmonStage      string               `json:"salmonStage" msgpack:"salmonStage"`
	SalmonWeapons    []string             `json:"salmonWeapons" msgpack:"salmonWeapons"`
	SalmonDifficulty model.DifficultyRank `json:"salmonDifficulty" msgpack:"salmonDifficulty"`

	UpdatedHour  int                   `json:"updatedHour" msgpack:"updatedHour"`
	IsFestActive bool                  `json:"isFestActive" msgpack:"isFestActive"`
	FestSlots    [model.SlotCount]bool `json:"festSlots" msgpack:"festSlots"`
}

// Serialize extracts the now slot of board. now is stamped as the wall-clock
// hour in loc.
func Serialize(board *model.Board, now time.Time, loc *time.Location) *ScheduleSnapshot {
	s := &ScheduleSnapshot{
		RegularStages:   stageNames(board, model.ModeRegular),
		OpenRule:        ruleName(board, model.ModeOpen),
		OpenStages:      stageNames(board, model.ModeOpen),
		ChallengeRule:   ruleName(board, model.ModeChallenge),
		ChallengeStages: stageNames(board, model.ModeChallenge),
		XRule:           ruleName(board, model.ModeX),
		XStages:         stageNames(board, model.ModeX),
		UpdatedHour:     gametime.Hour(now, loc),
		IsFestActive:    board.FestActive[model.SlotNow],
		FestSlots:       board.FestActive,
	}

	salmon := board.Now(model.ModeSalmon)
	if salmon.Stage != nil {
		s.SalmonStage = salmon.Stage.Name
	}
	s.SalmonWeapons = salmon.WeaponNames()
	s.SalmonDifficulty = board.Ranks[model.SlotNow]
	if s.SalmonDifficulty == "" {
		s.SalmonDifficulty = model.RankUnknown
	}
	return s
}

func stageNames(board *model.Board, mode model.Mode) []string {
	e := board.Now(mode)
	return e.StageNames()
}

func ruleName(board *model.Board, mode model.Mode) string {
	e := board.Now(mode)
	if e.Rule == nil {
		return ""
	}
	return e.Rule.Name
}

// Encode returns the indented JSON body of s.
func (s *ScheduleSnapshot) Encode() ([]byte, error) {
	body, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}
	return body, nil
}

// Digest hashes the encoded snapshot without its update hour, so that two
// snapshots carrying the same schedule share a digest.
func (s *ScheduleSnapshot) Digest() (uint64, error) {
	c := *s
	c.UpdatedHour = 0
	body, err := json.Marshal(&c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode snapshot")
	}
	return xxh3.Hash(body), nil
}

// Write encodes s to path, creating parent directories.
func (s *ScheduleSnapshot) Write(path string) error {
	body, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", path)
	}
	return nil
}

// Read decodes a snapshot previously written to path.
func Read(path string) (*ScheduleSnapshot, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %s", path)
	}
	var s ScheduleSnapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to decode snapshot %s", path)
	}
	return &s, nil
}
