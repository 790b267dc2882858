package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appcontext"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/difficulty"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/publish"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/render"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/schedule"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/infra"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/logger"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Core
		feed.Module(),
		difficulty.Module(),
		schedule.Module(),
		render.Module(),
		publish.Module(),

		// Global Singleton Inits
		fx.Invoke(infra.SentryInit),

		// fx Extra Options
		fx.StartTimeout(10 * time.Second),
		fx.StopTimeout(30 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
