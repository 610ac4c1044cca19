package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func pillarsCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, trackerFlags(&cfg)...)

	return &cli.Command{
		Name:  "pillars",
		Usage: "List the life-focus pillars stored in the tracker",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			tracker, err := cfg.newTracker()
			if err != nil {
				return err
			}

			pillars, err := tracker.ListPillars(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list pillars")
			}

			for _, p := range pillars {
				fmt.Fprintf(c.Root().Writer, "%s %s (%s)\n", p.Emoji, p.Name, p.UUID)
			}
			return nil
		},
	}
}
