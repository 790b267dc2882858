package board

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/publish"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/snapshot"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/gametime"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/observability"
)

func run(c *cli.Context, deps CommandDeps) (err error) {
	defer observability.Push(deps.Config.PushgatewayURL)
	defer func() {
		if err != nil {
			sentry.CaptureException(err)
			sentry.Flush(5 * time.Second)
			err = cli.Exit(err.Error(), 1)
		}
	}()

	ctx := c.Context
	output, snapshotPath := c.String("output"), c.String("snapshot")

	board, err := deps.ScheduleService.Assemble(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to assemble board")
	}

	if err := deps.RenderService.RenderTo(ctx, board, output); err != nil {
		return errors.Wrap(err, "failed to render board")
	}

	snap := snapshot.Serialize(board, time.Now(), gametime.Location(deps.Config.TimeZone))
	if err := snap.Write(snapshotPath); err != nil {
		return errors.Wrap(err, "failed to write snapshot")
	}
	log.Info().Str("evt.name", "snapshot.write").Str("path", snapshotPath).Bool("fest", snap.IsFestActive).Msg("snapshot written")

	if c.Bool("no-publish") {
		return nil
	}
	artifacts, err := publish.NewArtifacts(output, snap)
	if err != nil {
		log.Error().Err(err).Str("evt.name", "publish").Msg("failed to prepare artifacts, publishing skipped")
		return nil
	}
	deps.PublishService.Publish(ctx, artifacts)
	return nil
}
