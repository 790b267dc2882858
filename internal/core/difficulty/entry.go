package difficulty

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("difficulty",
		fx.Provide(
			NewRepo,
			NewService,
		),
	)
}
