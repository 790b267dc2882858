package feed

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("feed",
		fx.Provide(
			NewRepo,
			NewService,
		),
	)
}
