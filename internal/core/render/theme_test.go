package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

func TestThemeLabel(t *testing.T) {
	plain := &model.RotationEntry{}
	flagged := &model.RotationEntry{IsFest: true}

	assert.Equal(t, DefaultTheme.Modes[model.ModeOpen], DefaultTheme.Label(model.ModeOpen, plain, false))
	assert.Equal(t, DefaultTheme.Fest, DefaultTheme.Label(model.ModeOpen, flagged, false))
	// a festival record without the flag still follows the slot
	assert.Equal(t, DefaultTheme.Fest, DefaultTheme.Label(model.ModeOpen, plain, true))
	assert.Equal(t, DefaultTheme.Modes[model.ModeX], DefaultTheme.Label(model.ModeX, plain, true))
	assert.Equal(t, white, DefaultTheme.Label(model.Mode("unknown"), plain, false))
}

func TestRenderFestActiveSlotColor(t *testing.T) {
	f := newFixture(t)

	var slots model.Aligned
	slots[model.SlotNow] = battleEntry(model.Stage{Name: "S1"})
	var fest [model.SlotCount]bool
	fest[model.SlotNow] = true

	canvas := whiteCanvas(f.renderer.Layout)
	f.renderer.Render(context.Background(), canvas, model.ModeRegular, slots, fest)

	box := f.renderer.Layout.Slot(string(model.ModeRegular), model.SlotNow)[RegionTime].Rectangle().Inset(-labelPadding)
	assert.Positive(t, countColor(canvas, DefaultTheme.Fest, box))
	assert.Zero(t, countColor(canvas, DefaultTheme.Modes[model.ModeRegular], box))
}
