package rate

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/gamebearonline-web/spl3-X-Bot/cmd/app/cli"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/difficulty"
)

type CommandDeps struct {
	fx.In

	DifficultyService *difficulty.Service
}

func Command() *cli.Command {
	depsFn := cliapp.DepsFn[CommandDeps]()
	return &cli.Command{
		Name:  "difficulty",
		Usage: "rate the cooperative loadout of a schedule snapshot and write the rank back",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schedule",
				Usage:   "path of the schedule snapshot to patch",
				EnvVars: []string{"SCHEDULE_JSON"},
				Value:   "Thumbnail/schedule.json",
			},
			&cli.StringFlag{
				Name:    "weapon-rank",
				Usage:   "path or URL of the weapon rating table",
				EnvVars: []string{"WEAPON_RANK_JSON"},
				Value:   "data/weapon_rank.json",
			},
		},
		Action: func(c *cli.Context) error {
			deps, stop := depsFn()
			defer stop()
			return run(c, deps)
		},
	}
}
