package render

import (
	"image/color"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

// Theme holds label colors. Festival slots use Fest instead of the mode color.
type Theme struct {
	Modes    map[model.Mode]color.RGBA
	Fest     color.RGBA
	Tricolor color.RGBA
	Text     color.RGBA
	Rank     map[model.DifficultyRank]color.RGBA
}

var DefaultTheme = Theme{
	Modes: map[model.Mode]color.RGBA{
		model.ModeRegular:   {208, 246, 35, 255},
		model.ModeOpen:      {245, 73, 16, 255},
		model.ModeChallenge: {245, 73, 16, 255},
		model.ModeX:         {10, 220, 156, 255},
		model.ModeSalmon:    {255, 139, 0, 255},
	},
	Fest:     color.RGBA{120, 72, 255, 255},
	Tricolor: color.RGBA{255, 214, 0, 255},
	Text:     color.RGBA{0, 0, 0, 255},
	Rank: map[model.DifficultyRank]color.RGBA{
		model.RankSS: {230, 0, 18, 255},
		model.RankS:  {255, 80, 40, 255},
		model.RankA:  {255, 139, 0, 255},
		model.RankB:  {255, 200, 0, 255},
		model.RankC:  {150, 210, 60, 255},
		model.RankD:  {60, 190, 200, 255},
		model.RankE:  {90, 140, 255, 255},
	},
}

// Label returns the background color of a slot's labels. festActive is the
// slot's festival flag from the merged board.
func (t Theme) Label(mode model.Mode, e *model.RotationEntry, festActive bool) color.RGBA {
	if e.IsFest || (festActive && mode.FestEligible()) {
		return t.Fest
	}
	if c, ok := t.Modes[mode]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// RankColor returns the background of the difficulty label. Unknown ranks
// are drawn on white.
func (t Theme) RankColor(rank model.DifficultyRank) color.RGBA {
	if c, ok := t.Rank[rank]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}
