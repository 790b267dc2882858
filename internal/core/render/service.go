package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/observability"
)

type Service struct {
	Renderer *Renderer

	templatePath     string
	festTemplatePath string
}

func NewService(conf *appconfig.Config, renderer *Renderer) *Service {
	return &Service{
		Renderer:         renderer,
		templatePath:     conf.TemplatePath,
		festTemplatePath: conf.FestTemplatePath,
	}
}

// Board paints every mode of board onto the matching template.
func (s *Service) Board(ctx context.Context, board *model.Board) *image.RGBA {
	canvas := s.Canvas(board.FestActive[model.SlotNow])

	for _, mode := range model.VersusModes {
		s.Renderer.Render(ctx, canvas, mode, board.Slots[mode], board.FestActive)
	}
	s.Renderer.RenderTricolor(ctx, canvas, board.Fest, board.FestActive)
	s.Renderer.RenderCoop(ctx, canvas, board.Slots[model.ModeSalmon], board.Ranks)

	return canvas
}

// Canvas loads the background template. The festival template is used while
// a festival is running. Missing templates fall back to a plain canvas of
// the layout's size.
func (s *Service) Canvas(fest bool) *image.RGBA {
	paths := []string{s.templatePath}
	if fest {
		paths = []string{s.festTemplatePath, s.templatePath}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		img, err := loadTemplate(path)
		if err != nil {
			log.Warn().Err(err).Str("evt.name", "render.template").Str("path", path).Msg("template unavailable")
			continue
		}
		log.Debug().Str("evt.name", "render.template").Str("path", path).Bool("fest", fest).Msg("using template")
		return img
	}

	l := s.Renderer.Layout
	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return canvas
}

// RenderTo renders board and writes it as PNG to path, creating parent
// directories.
func (s *Service) RenderTo(ctx context.Context, board *model.Board, path string) error {
	start := time.Now()
	canvas := s.Board(ctx, board)
	if err := WritePNG(path, canvas); err != nil {
		return err
	}
	elapsed := time.Since(start)
	observability.RenderDuration.Observe(elapsed.Seconds())

	log.Info().
		Str("evt.name", "render.board").
		Str("path", path).
		Dur("elapsed", elapsed).
		Bool("fest", board.FestActive[model.SlotNow]).
		Msg("board rendered")
	return nil
}

func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

func loadTemplate(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode template %s", path)
	}
	canvas := image.NewRGBA(src.Bounds())
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)
	return canvas, nil
}
