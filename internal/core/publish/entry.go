package publish

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("publish",
		fx.Provide(
			NewService,
		),
	)
}
