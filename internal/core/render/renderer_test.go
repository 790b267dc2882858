package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func solidPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeIcon(t *testing.T, dir, name string, c color.Color) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name)+".png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, solidPNG(t, c), 0o644))
}

func whiteCanvas(l *Layout) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return canvas
}

func center(r Rect) (int, int) {
	return r[0] + r[2]/2, r[1] + r[3]/2
}

type fixture struct {
	renderer *Renderer
	server   *httptest.Server
	redHits  atomic.Int32
	iconDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{iconDir: t.TempDir()}

	redPNG := solidPNG(t, red)
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/red.png" {
			http.NotFound(w, r)
			return
		}
		f.redHits.Add(1)
		_, _ = w.Write(redPNG)
	}))
	t.Cleanup(f.server.Close)

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		FeedTimeout:   time.Second,
		FeedUserAgent: "test",
		IconDir:       f.iconDir,
	}}
	layout, err := LoadLayout("")
	require.NoError(t, err)
	faces, err := LoadFaces(filepath.Join(f.iconDir, "no-font.ttf"), layout.Fonts)
	require.NoError(t, err)

	f.renderer = &Renderer{
		Assets: NewAssets(conf, feed.NewRepo(conf), NewImageCache()),
		Layout: layout,
		Faces:  faces,
		Theme:  DefaultTheme,
		loc:    time.UTC,
	}
	return f
}

func battleEntry(stages ...model.Stage) model.RotationEntry {
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	return model.RotationEntry{
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Rule:      &model.Rule{Key: "AREA", Name: "ガチエリア"},
		Stages:    stages,
	}
}

func TestRenderPaintsRegions(t *testing.T) {
	f := newFixture(t)
	writeIcon(t, f.iconDir, RuleIcon("AREA"), blue)

	var slots model.Aligned
	slots[model.SlotNow] = battleEntry(
		model.Stage{Name: "S1", Image: f.server.URL + "/red.png"},
		model.Stage{Name: "S2", Image: f.server.URL + "/missing.png"},
	)

	l := f.renderer.Layout
	canvas := whiteCanvas(l)
	f.renderer.Render(context.Background(), canvas, model.ModeOpen, slots, [model.SlotCount]bool{})

	regions := l.Slot(string(model.ModeOpen), model.SlotNow)
	assert.Equal(t, red, canvas.RGBAAt(center(regions[stageImageRegion(0)])))
	assert.Equal(t, blue, canvas.RGBAAt(center(regions[RegionRuleIcon])))
	// unresolvable image and no icon fallback: left untouched
	assert.Equal(t, white, canvas.RGBAAt(center(regions[stageImageRegion(1)])))

	// empty slots are not painted
	next := l.Slot(string(model.ModeOpen), model.SlotNext)
	assert.Equal(t, white, canvas.RGBAAt(center(next[RegionRuleIcon])))
}

func TestRenderFetchesSharedImageOnce(t *testing.T) {
	f := newFixture(t)

	stage := model.Stage{Name: "S1", Image: f.server.URL + "/red.png"}
	var slots model.Aligned
	for i := range slots {
		slots[i] = battleEntry(stage, stage)
	}

	canvas := whiteCanvas(f.renderer.Layout)
	f.renderer.Render(context.Background(), canvas, model.ModeRegular, slots, [model.SlotCount]bool{})
	f.renderer.Render(context.Background(), canvas, model.ModeX, slots, [model.SlotCount]bool{})

	assert.EqualValues(t, 1, f.redHits.Load())
}

func TestRenderFallsBackToStageIcon(t *testing.T) {
	f := newFixture(t)
	writeIcon(t, f.iconDir, StageIcon("S2"), blue)

	var slots model.Aligned
	slots[model.SlotNow] = battleEntry(
		model.Stage{Name: "S1"},
		model.Stage{Name: "S2", Image: f.server.URL + "/missing.png"},
	)

	canvas := whiteCanvas(f.renderer.Layout)
	f.renderer.Render(context.Background(), canvas, model.ModeChallenge, slots, [model.SlotCount]bool{})

	regions := f.renderer.Layout.Slot(string(model.ModeChallenge), model.SlotNow)
	assert.Equal(t, blue, canvas.RGBAAt(center(regions[stageImageRegion(1)])))
	assert.Equal(t, white, canvas.RGBAAt(center(regions[stageImageRegion(0)])))
}

func TestRenderCoop(t *testing.T) {
	f := newFixture(t)
	writeIcon(t, f.iconDir, WeaponIcon("わかばシューター"), blue)
	writeIcon(t, f.iconDir, BossIcon("Tatsu"), blue)

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	var slots model.Aligned
	slots[model.SlotNow] = model.RotationEntry{
		StartTime: start,
		EndTime:   start.Add(40 * time.Hour),
		Stage:     &model.Stage{Name: "シェケナダム", Image: f.server.URL + "/red.png"},
		Boss:      &model.Boss{ID: "Tatsu", Name: "タツ"},
		Weapons: []model.Weapon{
			{Name: "わかばシューター"},
			{Name: "ボールドマーカー", Image: f.server.URL + "/red.png"},
			{Name: "unknown"},
			{Name: "unknown"},
			{Name: "fifth", Image: f.server.URL + "/red.png"},
		},
		IsBigRun: true,
	}
	var ranks [model.SlotCount]model.DifficultyRank
	ranks[model.SlotNow] = model.RankA

	canvas := whiteCanvas(f.renderer.Layout)
	f.renderer.RenderCoop(context.Background(), canvas, slots, ranks)

	regions := f.renderer.Layout.Slot(string(model.ModeSalmon), model.SlotNow)
	assert.Equal(t, red, canvas.RGBAAt(center(regions[RegionStageImg])))
	assert.Equal(t, blue, canvas.RGBAAt(center(regions[weaponRegion(0)])))
	assert.Equal(t, red, canvas.RGBAAt(center(regions[weaponRegion(1)])))
	assert.Equal(t, white, canvas.RGBAAt(center(regions[weaponRegion(2)])))
	assert.Equal(t, blue, canvas.RGBAAt(center(regions[RegionBossIcon])))
	// no big-run badge in the icon directory
	assert.Equal(t, white, canvas.RGBAAt(center(regions[RegionBigRun])))

	rank := regions[RegionRank]
	assert.Equal(t, DefaultTheme.RankColor(model.RankA), canvas.RGBAAt(rank[0]+rank[2]/2, rank[1]+1))
}

func TestRenderTricolor(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	var fest model.Aligned
	for i := range fest {
		fest[i] = model.RotationEntry{
			StartTime:      start.Add(time.Duration(i) * 2 * time.Hour),
			EndTime:        start.Add(time.Duration(i+1) * 2 * time.Hour),
			IsFest:         true,
			IsTricolor:     i == 0 || i == 1,
			TricolorStages: []model.Stage{{Name: "T", Image: f.server.URL + "/red.png"}},
		}
	}
	active := [model.SlotCount]bool{true, false, true, true, true}

	canvas := whiteCanvas(f.renderer.Layout)
	f.renderer.RenderTricolor(context.Background(), canvas, fest, active)

	now := f.renderer.Layout.Slot(LayerTricolor, model.SlotNow)
	assert.Equal(t, red, canvas.RGBAAt(center(now[stageImageRegion(0)])))
	box, ok := slotBounds(now)
	require.True(t, ok)
	assert.Equal(t, DefaultTheme.Tricolor, canvas.RGBAAt(box.Min.X+1, box.Max.Y-1))

	// tricolor but not active, and active but not tricolor
	for _, slot := range []model.Slot{model.SlotNext, model.SlotNext2} {
		regions := f.renderer.Layout.Slot(LayerTricolor, slot)
		assert.Equal(t, white, canvas.RGBAAt(center(regions[stageImageRegion(0)])), slot.String())
	}
}
