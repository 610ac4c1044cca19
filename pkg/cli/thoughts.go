package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func thoughtsCommand() *cli.Command {
	var (
		cfg        config
		inputPath  string
		skipUpsert bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to JSON file containing the raw export",
			Value:       "savedData.json",
			Sources:     cli.EnvVars("REFLECTOR_INPUT"),
			Destination: &inputPath,
		},
		&cli.BoolFlag{
			Name:        "no-store",
			Usage:       "Skip upserting the record to the tracker",
			Destination: &skipUpsert,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, trackerFlags(&cfg)...)

	return &cli.Command{
		Name:  "thoughts",
		Usage: "Generate weekly thoughts and goal suggestions from a raw export file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			export, err := readExport(inputPath)
			if err != nil {
				return err
			}

			uc, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " generating weekly thoughts..."
			sp.Start()
			record, err := uc.WeeklyThoughts(ctx, export)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "failed to generate weekly thoughts")
			}

			if !skipUpsert {
				if _, err := uc.Store(ctx, record); err != nil {
					return goerr.Wrap(err, "failed to store weekly thoughts")
				}
			}

			fmt.Fprintf(c.Root().Writer, "%s (%s)\n\n%s\n", record.Type, record.Date, record.Summary)
			return nil
		},
	}
}
