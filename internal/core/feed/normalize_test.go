package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestStageNameFallbacks(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{`{"name":"ユノハナ大渓谷","image":"https://example.com/1.png"}`, "ユノハナ大渓谷"},
		{`{"name":{"ja_JP":"ゴンズイ地区"}}`, "ゴンズイ地区"},
		{`{"name":{"ja":"ヤガラ市場"}}`, "ヤガラ市場"},
		{`{"name":{"jp":"マテガイ放水路"}}`, "マテガイ放水路"},
		{`"ナメロウ金属"`, "ナメロウ金属"},
		{`{"name":"  "}`, ""},
	}

	for _, test := range tests {
		s, _ := Stage(gjson.Parse(test.raw))
		assert.Equal(t, test.name, s.Name, "stage name for %s", test.raw)
	}
}

func TestStageImageFallbacks(t *testing.T) {
	s, ok := Stage(gjson.Parse(`{"name":"A","image":{"url":"https://example.com/a.png"}}`))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", s.Image)

	s, ok = Stage(gjson.Parse(`{"name":"B","thumbnail":"https://example.com/b.png"}`))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/b.png", s.Image)
}

func TestWeaponNameShapes(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{`"モップリン"`, "モップリン"},
		{`{"name":"モップリン"}`, "モップリン"},
		{`{"weapon":{"name":"モップリン"}}`, "モップリン"},
		{`{"weapon":{"name":{"ja_JP":"モップリン"}}}`, "モップリン"},
		{`{"image":"x"}`, ""},
		{`null`, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.name, WeaponName(gjson.Parse(test.raw)), "weapon name for %s", test.raw)
	}
}

func TestEntryVersus(t *testing.T) {
	raw := `{
		"start_time": "2024-01-01T15:00:00+09:00",
		"end_time": "2024-01-01T17:00:00+09:00",
		"rule": {"key": "AREA", "name": "ガチエリア"},
		"stages": [
			{"id": 1, "name": "ユノハナ大渓谷", "image": "https://example.com/1.png"},
			{"id": 2, "name": "ゴンズイ地区", "image": "https://example.com/2.png"}
		],
		"is_fest": false
	}`

	e, ok := Entry(gjson.Parse(raw))
	require.True(t, ok)
	assert.Equal(t, "AREA", e.Rule.Key)
	assert.Equal(t, "ガチエリア", e.Rule.Name)
	assert.Equal(t, []string{"ユノハナ大渓谷", "ゴンズイ地区"}, e.StageNames())
	assert.True(t, e.HasStages())
	assert.False(t, e.IsFest)
}

func TestEntryCoop(t *testing.T) {
	raw := `{
		"start_time": "2024-01-01T08:00:00+09:00",
		"end_time": "2024-01-03T00:00:00+09:00",
		"boss": {"id": "6e58d4f9d5c2", "name": "ヨコヅナ"},
		"stage": {"id": 7, "name": "すじこジャンクション跡", "image": "https://example.com/s.png"},
		"weapons": [
			{"name": "スプラシューター", "image": "https://example.com/w1.png"},
			{"name": "ホクサイ", "image": "https://example.com/w2.png"},
			{"name": "ジムワイパー", "image": "https://example.com/w3.png"},
			{"name": "バケットスロッシャー", "image": "https://example.com/w4.png"},
			{"name": "余分", "image": "https://example.com/w5.png"}
		],
		"is_big_run": true
	}`

	e, ok := Entry(gjson.Parse(raw))
	require.True(t, ok)
	require.NotNil(t, e.Stage)
	assert.Equal(t, "すじこジャンクション跡", e.Stage.Name)
	assert.Equal(t, "6e58d4f9d5c2", e.Boss.ID)
	assert.Len(t, e.Weapons, 4)
	assert.True(t, e.IsBigRun)
	assert.True(t, e.HasStages())
	assert.Nil(t, e.Rule)
}

func TestEntryFestNullStages(t *testing.T) {
	raw := `{
		"start_time": "2024-01-01T15:00:00+09:00",
		"end_time": "2024-01-01T17:00:00+09:00",
		"rule": null,
		"stages": null,
		"is_fest": true,
		"is_tricolor": false,
		"tricolor_stages": null
	}`

	e, ok := Entry(gjson.Parse(raw))
	require.True(t, ok)
	assert.Nil(t, e.Stages)
	assert.Nil(t, e.Rule)
	assert.False(t, e.HasStages())
	assert.False(t, e.StagesListed)
	assert.True(t, e.IsFest)
}

func TestEntryFestEmptyStages(t *testing.T) {
	raw := `{
		"start_time": "2024-01-01T15:00:00+09:00",
		"end_time": "2024-01-01T17:00:00+09:00",
		"stages": [],
		"is_fest": true
	}`

	e, ok := Entry(gjson.Parse(raw))
	require.True(t, ok)
	assert.Empty(t, e.Stages)
	assert.False(t, e.HasStages())
	assert.True(t, e.StagesListed)
}

func TestEntryRejectsBadWindows(t *testing.T) {
	_, ok := Entry(gjson.Parse(`{"start_time":"2024-01-01T17:00:00+09:00","end_time":"2024-01-01T15:00:00+09:00"}`))
	assert.False(t, ok, "end before start")

	_, ok = Entry(gjson.Parse(`{"end_time":"2024-01-01T15:00:00+09:00"}`))
	assert.False(t, ok, "missing start")

	_, ok = Entry(gjson.Parse(`{"startTime":"2024-01-01T15:00:00+09:00","endTime":"2024-01-01T17:00:00+09:00"}`))
	assert.True(t, ok, "camelCase keys")
}
