package render

import (
	_ "embed"
	"image"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

//go:embed default_layout.yaml
var defaultLayout []byte

// Region names used in layout descriptors.
const (
	RegionTime      = "time"
	RegionEndTime   = "end_time"
	RegionRuleIcon  = "rule_icon"
	RegionStageImg  = "stage_image"
	RegionStageName = "stage_name"
	RegionBossIcon  = "boss_icon"
	RegionBigRun    = "big_run"
	RegionRank      = "rank"
)

// LayerTricolor is the layout key of the tricolor overlay. It shares the
// canvas area of the X mode.
const LayerTricolor = "tricolor"

func stageImageRegion(i int) string { return "stage" + string(rune('0'+i)) + "_image" }
func stageNameRegion(i int) string  { return "stage" + string(rune('0'+i)) + "_name" }
func weaponRegion(i int) string     { return "weapon" + string(rune('0'+i)) }

// Rect is a region as [x, y, w, h].
type Rect [4]int

func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r[0], r[1], r[0]+r[2], r[1]+r[3])
}

// SlotLayout maps region names to rectangles.
type SlotLayout map[string]Rect

// Fonts holds label font sizes in points.
type Fonts struct {
	TimeNow  float64 `yaml:"time_now" validate:"gt=0"`
	StageNow float64 `yaml:"stage_now" validate:"gt=0"`
	Time     float64 `yaml:"time" validate:"gt=0"`
	Stage    float64 `yaml:"stage" validate:"gt=0"`
	Rank     float64 `yaml:"rank" validate:"gt=0"`
}

// Layout describes where every mode's slots are painted.
type Layout struct {
	Width  int   `yaml:"width" validate:"gt=0"`
	Height int   `yaml:"height" validate:"gt=0"`
	Fonts  Fonts `yaml:"fonts"`

	// Modes maps a mode (or LayerTricolor) to slot name to regions.
	Modes map[string]map[string]SlotLayout `yaml:"modes" validate:"required"`
}

// Slot returns the regions of one slot of a layer, or nil when the layout
// does not place it.
func (l *Layout) Slot(layer string, slot model.Slot) SlotLayout {
	return l.Modes[layer][slot.String()]
}

// LoadLayout reads a layout descriptor from path, or returns the embedded
// default when path is empty.
func LoadLayout(path string) (*Layout, error) {
	body := defaultLayout
	if path != "" {
		var err error
		body, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read layout %s", path)
		}
	}
	return ParseLayout(body)
}

func ParseLayout(body []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(body, &l); err != nil {
		return nil, spl3err.ErrInvalidLayout.Msg("failed to parse layout: %s", err.Error())
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that every layer and slot is known and that every region
// is non-empty and lies on the canvas.
func (l *Layout) Validate() error {
	if err := validator.New().Struct(l); err != nil {
		return spl3err.ErrInvalidLayout.Msg("%s", err.Error())
	}

	knownSlots := make(map[string]bool, model.SlotCount)
	for _, s := range model.Slots() {
		knownSlots[s.String()] = true
	}
	knownLayers := map[string]bool{LayerTricolor: true, string(model.ModeSalmon): true}
	for _, m := range model.VersusModes {
		knownLayers[string(m)] = true
	}

	canvas := image.Rect(0, 0, l.Width, l.Height)
	for layer, slots := range l.Modes {
		if !knownLayers[layer] {
			return spl3err.ErrInvalidLayout.Msg("unknown layer %q", layer)
		}
		for slot, regions := range slots {
			if !knownSlots[slot] {
				return spl3err.ErrInvalidLayout.Msg("unknown slot %q in layer %q", slot, layer)
			}
			for name, r := range regions {
				if r[2] <= 0 || r[3] <= 0 {
					return spl3err.ErrInvalidLayout.Msg("region %s.%s.%s has no area", layer, slot, name)
				}
				if !r.Rectangle().In(canvas) {
					return spl3err.ErrInvalidLayout.Msg("region %s.%s.%s lies outside the %dx%d canvas", layer, slot, name, l.Width, l.Height)
				}
			}
		}
	}
	return nil
}
