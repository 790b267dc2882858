package render

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const labelPadding = 2

// Faces holds the label faces of one run, one per size of the layout.
type Faces struct {
	TimeNow  font.Face
	StageNow font.Face
	Time     font.Face
	Stage    font.Face
	Rank     font.Face
}

// LoadFaces parses the font at path and builds the faces for sizes. When the
// font cannot be read the bundled Go font is used, which lacks CJK glyphs
// but keeps rendering going.
func LoadFaces(path string, sizes Fonts) (*Faces, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "render.font").Str("path", path).Msg("font unavailable, using bundled fallback")
		data = goregular.TTF
	}

	f, err := opentype.Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "render.font").Str("path", path).Msg("font unparsable, using bundled fallback")
		if f, err = opentype.Parse(goregular.TTF); err != nil {
			return nil, errors.Wrap(err, "failed to parse bundled font")
		}
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	faces := &Faces{}
	for _, fs := range []struct {
		dst  *font.Face
		size float64
	}{
		{&faces.TimeNow, sizes.TimeNow},
		{&faces.StageNow, sizes.StageNow},
		{&faces.Time, sizes.Time},
		{&faces.Stage, sizes.Stage},
		{&faces.Rank, sizes.Rank},
	} {
		if *fs.dst, err = face(fs.size); err != nil {
			return nil, errors.Wrapf(err, "failed to create %vpt face", fs.size)
		}
	}
	return faces, nil
}

type align int

const (
	alignCenter align = iota
	alignLeft
)

// drawLabel paints text inside box on a padded background of bg. Centered
// labels are centered on both axes; left labels are only centered
// vertically.
func drawLabel(dst draw.Image, box Rect, text string, face font.Face, bg, fg color.Color, a align) {
	if text == "" {
		return
	}

	metrics := face.Metrics()
	tw := font.MeasureString(face, text).Ceil()
	th := (metrics.Ascent + metrics.Descent).Ceil()

	x := box[0]
	if a == alignCenter {
		x += (box[2] - tw) / 2
	}
	y := box[1] + (box[3]-th)/2

	bgRect := image.Rect(x-labelPadding, y-labelPadding, x+tw+labelPadding, y+th+labelPadding)
	draw.Draw(dst, bgRect, image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + metrics.Ascent},
	}
	d.DrawString(text)
}
