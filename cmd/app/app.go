package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/gamebearonline-web/spl3-X-Bot/cmd/app/cli/board"
	"github.com/gamebearonline-web/spl3-X-Bot/cmd/app/cli/rate"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "spl3board",
		Usage:       "render the Splatoon 3 rotation board",
		Description: "Fetches the rotation feeds, aligns them onto one five-slot timeline and renders the board image and the schedule snapshot consumed by the posting bots.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			board.Command(),
			rate.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
