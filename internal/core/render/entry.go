package render

import (
	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
)

func Module() fx.Option {
	return fx.Module("render",
		fx.Provide(
			NewImageCache,
			NewAssets,
			func(conf *appconfig.Config) (*Layout, error) {
				return LoadLayout(conf.LayoutPath)
			},
			func(conf *appconfig.Config, layout *Layout) (*Faces, error) {
				return LoadFaces(conf.FontPath, layout.Fonts)
			},
			NewRenderer,
			NewService,
		),
	)
}
