package schedule

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("schedule",
		fx.Provide(
			NewService,
		),
	)
}
