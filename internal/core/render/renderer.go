package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/gametime"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/observability"
)

// Renderer paints aligned slots onto a canvas according to the layout.
// Asset failures never fail a render: the element is skipped and logged.
type Renderer struct {
	Assets *Assets
	Layout *Layout
	Faces  *Faces
	Theme  Theme

	loc *time.Location
}

func NewRenderer(conf *appconfig.Config, assets *Assets, layout *Layout, faces *Faces) *Renderer {
	return &Renderer{
		Assets: assets,
		Layout: layout,
		Faces:  faces,
		Theme:  DefaultTheme,
		loc:    gametime.Location(conf.TimeZone),
	}
}

// Render paints the battle slots of mode. fest holds the festival flag of
// every slot.
func (r *Renderer) Render(ctx context.Context, canvas draw.Image, mode model.Mode, slots model.Aligned, fest [model.SlotCount]bool) {
	for _, slot := range model.Slots() {
		regions := r.Layout.Slot(string(mode), slot)
		entry := &slots[slot]
		if regions == nil || entry.Empty() {
			continue
		}

		bg := r.Theme.Label(mode, entry, fest[slot])
		r.label(canvas, regions, RegionTime, gametime.Range(entry.StartTime, entry.EndTime, r.loc), r.timeFace(slot), bg, alignCenter)

		if entry.Rule != nil && entry.Rule.Key != "" {
			r.icon(canvas, regions, RegionRuleIcon, "rule", RuleIcon(entry.Rule.Key))
		}

		for i, stage := range entry.Stages {
			if i == model.MaxStages {
				break
			}
			r.paint(ctx, canvas, regions, stageImageRegion(i), "stage", stage.Image, StageIcon(stage.Name))
			r.label(canvas, regions, stageNameRegion(i), stage.Name, r.stageFace(slot), bg, alignCenter)
		}
	}
}

// RenderCoop paints the cooperative slots along with the rank of each
// loadout.
func (r *Renderer) RenderCoop(ctx context.Context, canvas draw.Image, slots model.Aligned, ranks [model.SlotCount]model.DifficultyRank) {
	layer := string(model.ModeSalmon)
	for _, slot := range model.Slots() {
		regions := r.Layout.Slot(layer, slot)
		entry := &slots[slot]
		if regions == nil || entry.Empty() {
			continue
		}

		bg := r.Theme.Label(model.ModeSalmon, entry, false)
		face := r.timeFace(slot)
		r.label(canvas, regions, RegionTime, gametime.CoopStamp(entry.StartTime, r.loc), face, bg, alignLeft)
		r.label(canvas, regions, RegionEndTime, "~"+gametime.CoopStamp(entry.EndTime, r.loc), face, bg, alignLeft)

		if entry.Stage != nil {
			r.paint(ctx, canvas, regions, RegionStageImg, "stage", entry.Stage.Image, StageIcon(entry.Stage.Name))
			r.label(canvas, regions, RegionStageName, entry.Stage.Name, r.stageFace(slot), bg, alignCenter)
		}

		for i, w := range entry.Weapons {
			if i == model.MaxWeapons {
				break
			}
			r.paint(ctx, canvas, regions, weaponRegion(i), "weapon", w.Image, WeaponIcon(w.Name))
		}

		if entry.Boss != nil && entry.Boss.ID != "" {
			r.icon(canvas, regions, RegionBossIcon, "boss", BossIcon(entry.Boss.ID))
		}
		if entry.IsBigRun {
			r.icon(canvas, regions, RegionBigRun, "bigrun", IconBigRun)
		}

		rank := ranks[slot]
		if rank == "" {
			rank = model.RankUnknown
		}
		r.label(canvas, regions, RegionRank, string(rank), r.Faces.Rank, r.Theme.RankColor(rank), alignCenter)
	}
}

// RenderTricolor paints the tricolor stage of every festival-active slot
// that has one over the X mode area.
func (r *Renderer) RenderTricolor(ctx context.Context, canvas draw.Image, fest model.Aligned, active [model.SlotCount]bool) {
	for _, slot := range model.Slots() {
		entry := &fest[slot]
		if !active[slot] || !entry.IsTricolor || len(entry.TricolorStages) == 0 {
			continue
		}
		regions := r.Layout.Slot(LayerTricolor, slot)
		if regions == nil {
			continue
		}

		// clear the X mode slot underneath
		if box, ok := slotBounds(regions); ok {
			draw.Draw(canvas, box, image.NewUniform(r.Theme.Tricolor), image.Point{}, draw.Src)
		}

		stage := entry.TricolorStages[0]
		r.label(canvas, regions, RegionTime, gametime.Range(entry.StartTime, entry.EndTime, r.loc), r.timeFace(slot), r.Theme.Fest, alignCenter)
		r.paint(ctx, canvas, regions, stageImageRegion(0), "stage", stage.Image, StageIcon(stage.Name))
		r.label(canvas, regions, stageNameRegion(0), stage.Name, r.stageFace(slot), r.Theme.Fest, alignCenter)
	}
}

func (r *Renderer) timeFace(slot model.Slot) font.Face {
	if slot == model.SlotNow {
		return r.Faces.TimeNow
	}
	return r.Faces.Time
}

func (r *Renderer) stageFace(slot model.Slot) font.Face {
	if slot == model.SlotNow {
		return r.Faces.StageNow
	}
	return r.Faces.Stage
}

func (r *Renderer) label(canvas draw.Image, regions SlotLayout, region, text string, face font.Face, bg color.Color, a align) {
	box, ok := regions[region]
	if !ok {
		return
	}
	drawLabel(canvas, box, text, face, bg, r.Theme.Text, a)
}

// paint pastes the image at u, or the named icon when u cannot be fetched.
func (r *Renderer) paint(ctx context.Context, canvas draw.Image, regions SlotLayout, region, kind, u, name string) {
	box, ok := regions[region]
	if !ok {
		return
	}
	img, err := r.Assets.Resolve(ctx, u, name)
	if err != nil {
		r.skip(kind, region, err)
		return
	}
	paste(canvas, box, img)
}

func (r *Renderer) icon(canvas draw.Image, regions SlotLayout, region, kind, name string) {
	box, ok := regions[region]
	if !ok {
		return
	}
	img, err := r.Assets.Icon(name)
	if err != nil {
		r.skip(kind, region, err)
		return
	}
	paste(canvas, box, img)
}

func (r *Renderer) skip(kind, region string, err error) {
	observability.AssetsSkipped.WithLabelValues(kind).Inc()
	log.Debug().Err(err).Str("evt.name", "render.asset").Str("kind", kind).Str("region", region).Msg("asset skipped")
}

// slotBounds returns the union of all regions of a slot.
func slotBounds(regions SlotLayout) (image.Rectangle, bool) {
	var box image.Rectangle
	for _, r := range regions {
		box = box.Union(r.Rectangle())
	}
	return box, !box.Empty()
}
