package board

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/gamebearonline-web/spl3-X-Bot/cmd/app/cli"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/publish"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/render"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/schedule"
)

type CommandDeps struct {
	fx.In

	Config          *appconfig.Config
	ScheduleService *schedule.Service
	RenderService   *render.Service
	PublishService  *publish.Service
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()
	return &cli.Command{
		Name:  "render",
		Usage: "fetch every feed, render the board and write the schedule snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "path of the rendered board image",
				Value:   "Thumbnail/Thumbnail.png",
			},
			&cli.StringFlag{
				Name:  "snapshot",
				Usage: "path of the schedule snapshot",
				Value: "Thumbnail/schedule.json",
			},
			&cli.BoolFlag{
				Name:  "no-publish",
				Usage: "write the artifacts locally only",
			},
		},
		Action: func(c *cli.Context) error {
			deps, stop := depsFn()
			defer stop()
			return run(c, deps)
		},
	}
}
