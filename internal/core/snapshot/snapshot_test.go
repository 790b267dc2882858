package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

var jst = time.FixedZone("JST", 9*60*60)

func stages(names ...string) []model.Stage {
	s := make([]model.Stage, 0, len(names))
	for _, n := range names {
		s = append(s, model.Stage{Name: n})
	}
	return s
}

func testBoard() *model.Board {
	start := time.Date(2024, 1, 1, 15, 0, 0, 0, jst)
	now := func(rule string, names ...string) model.Aligned {
		var a model.Aligned
		a[model.SlotNow] = model.RotationEntry{
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Rule:      &model.Rule{Key: "X", Name: rule},
			Stages:    stages(names...),
		}
		return a
	}

	var salmon model.Aligned
	salmon[model.SlotNow] = model.RotationEntry{
		StartTime: start,
		EndTime:   start.Add(40 * time.Hour),
		Stage:     &model.Stage{Name: "アラマキ砦"},
		Weapons: []model.Weapon{
			{Name: "わかばシューター"}, {Name: "スプラチャージャー"}, {Name: "ホクサイ"}, {Name: "ダイナモローラー"}, {Name: "extra"},
		},
	}

	return &model.Board{
		Slots: map[model.Mode]model.Aligned{
			model.ModeRegular:   now("ナワバリバトル", "ユノハナ大渓谷", "ゴンズイ地区", "マテガイ放水路"),
			model.ModeOpen:      now("ガチエリア", "ヤガラ市場"),
			model.ModeChallenge: now("ガチホコバトル", "ナメロウ金属", "マサバ海峡大橋"),
			model.ModeX:         now("ガチアサリ", "キンメダイ美術館", "マヒマヒリゾート&スパ"),
			model.ModeSalmon:    salmon,
		},
		FestActive: [model.SlotCount]bool{false, false, true, true, false},
		Ranks:      [model.SlotCount]model.DifficultyRank{model.RankB},
	}
}

func TestSerialize(t *testing.T) {
	now := time.Date(2024, 1, 1, 7, 30, 0, 0, time.UTC)
	s := Serialize(testBoard(), now, jst)

	assert.Equal(t, []string{"ユノハナ大渓谷", "ゴンズイ地区"}, s.RegularStages)
	assert.Equal(t, "ガチエリア", s.OpenRule)
	assert.Equal(t, []string{"ヤガラ市場"}, s.OpenStages)
	assert.Equal(t, "ガチホコバトル", s.ChallengeRule)
	assert.Len(t, s.ChallengeStages, 2)
	assert.Equal(t, "ガチアサリ", s.XRule)
	assert.Len(t, s.XStages, 2)
	assert.Equal(t, "アラマキ砦", s.SalmonStage)
	assert.Equal(t, []string{"わかばシューター", "スプラチャージャー", "ホクサイ", "ダイナモローラー"}, s.SalmonWeapons)
	assert.Equal(t, model.RankB, s.SalmonDifficulty)
	assert.Equal(t, 16, s.UpdatedHour)
	assert.False(t, s.IsFestActive)
	assert.Equal(t, [model.SlotCount]bool{false, false, true, true, false}, s.FestSlots)
}

func TestSerializeEmptyBoard(t *testing.T) {
	s := Serialize(&model.Board{}, time.Now(), jst)

	assert.Empty(t, s.RegularStages)
	assert.Empty(t, s.XRule)
	assert.Empty(t, s.SalmonStage)
	assert.Equal(t, model.RankUnknown, s.SalmonDifficulty)

	body, err := s.Encode()
	require.NoError(t, err)
	// lists are encoded as empty arrays rather than null
	assert.True(t, gjson.GetBytes(body, "regularStages").IsArray())
	assert.True(t, gjson.GetBytes(body, "salmonWeapons").IsArray())
}

func TestWriteAndRead(t *testing.T) {
	s := Serialize(testBoard(), time.Now(), jst)
	path := filepath.Join(t.TempDir(), "Thumbnail", "schedule.json")
	require.NoError(t, s.Write(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ガチエリア", gjson.GetBytes(body, "openRule").String())
	assert.Len(t, gjson.GetBytes(body, "festSlots").Array(), model.SlotCount)
	assert.Contains(t, string(body), "\n  \"")

	read, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, s, read)
}

func TestDigestIgnoresHour(t *testing.T) {
	board := testBoard()
	a := Serialize(board, time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), jst)
	b := Serialize(board, time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), jst)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	assert.Equal(t, da, db)

	b.OpenRule = "ガチヤグラ"
	dc, err := b.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, da, dc)
}
