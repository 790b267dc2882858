package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appcontext"
)

// Start builds and starts the application graph. The returned function stops
// it, running the infrastructure close hooks.
func Start(module fx.Option) (stop func()) {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.StopTimeout())
		defer cancel()
		if err := a.Stop(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to stop app cleanly")
		}
	}
}

// DepsFn returns a function populating T from the application graph.
func DepsFn[T any]() func() (T, func()) {
	return func() (T, func()) {
		var deps T
		stop := Start(fx.Populate(&deps))
		return deps, stop
	}
}
