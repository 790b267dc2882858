package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

func TestCombine(t *testing.T) {
	fest := entry(1, "Fest")
	fest.IsFest = true
	fest.IsTricolor = true
	fest.TricolorStages = []model.Stage{{Name: "Tricolor"}}

	// during the festival the regular feed publishes null stages
	regular := reference(5)
	regular[1].Stages = nil

	coopStart := t0.Add(-10 * time.Hour)
	coop := []model.RotationEntry{
		{StartTime: coopStart, EndTime: coopStart.Add(40 * time.Hour), Stage: &model.Stage{Name: "Coop"}},
		{StartTime: coopStart.Add(40 * time.Hour), EndTime: coopStart.Add(80 * time.Hour), Stage: &model.Stage{Name: "Coop2"}},
	}

	board, err := Combine(map[model.Mode][]model.RotationEntry{
		model.ModeRegular: regular,
		model.ModeOpen:    {entry(0, "O1", "O2"), entry(2, "O3", "O4")},
		model.ModeX:       {entry(4, "X1", "X2")},
		model.ModeSalmon:  coop,
		model.ModeFest:    {entry(0), fest},
	})
	require.NoError(t, err)

	assert.Equal(t, [model.SlotCount]bool{false, true, false, false, false}, board.FestActive)
	assert.True(t, board.AnyFestActive())

	assert.Equal(t, "Fest", board.Slots[model.ModeRegular][1].Stages[0].Name)
	assert.Equal(t, "Fest", board.Slots[model.ModeOpen][1].Stages[0].Name)
	assert.Equal(t, []string{"O3", "O4"}, board.Slots[model.ModeOpen][2].StageNames())
	assert.True(t, board.Slots[model.ModeChallenge][0].Empty())

	// the X mode is not festival-eligible
	assert.True(t, board.Slots[model.ModeX][1].Empty())
	assert.Equal(t, []string{"X1", "X2"}, board.Slots[model.ModeX][4].StageNames())

	assert.Equal(t, "Coop", board.Now(model.ModeSalmon).Stage.Name)
	assert.Equal(t, "Coop2", board.Slots[model.ModeSalmon][1].Stage.Name)
	assert.True(t, board.Slots[model.ModeSalmon][2].Empty())

	assert.True(t, board.Fest[1].IsTricolor)
}

func TestCombineWithoutReference(t *testing.T) {
	_, err := Combine(map[model.Mode][]model.RotationEntry{
		model.ModeOpen: reference(5),
	})
	assert.ErrorIs(t, err, spl3err.ErrReferenceFeedEmpty)
}

func TestCombineWithoutCoop(t *testing.T) {
	board, err := Combine(map[model.Mode][]model.RotationEntry{
		model.ModeRegular: reference(5),
	})
	require.NoError(t, err)
	assert.True(t, board.Now(model.ModeSalmon).Empty())
	assert.True(t, board.CoopTimeline[0].IsNull())
}
