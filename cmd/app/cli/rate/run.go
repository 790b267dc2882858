package rate

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func run(c *cli.Context, deps CommandDeps) error {
	rank, err := deps.DifficultyService.PatchFile(c.Context, c.String("schedule"), c.String("weapon-rank"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintln(c.App.Writer, rank)
	return nil
}
