package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/habitloop/reflector/pkg/model"
)

func journalCommand() *cli.Command {
	var (
		cfg       config
		inputPath string
		startDate string
		endDate   string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to JSON file containing an array of journal entries",
			Required:    true,
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "start",
			Usage:       "Start date of the range (YYYY-MM-DD)",
			Destination: &startDate,
		},
		&cli.StringFlag{
			Name:        "end",
			Usage:       "End date of the range (YYYY-MM-DD)",
			Destination: &endDate,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, trackerFlags(&cfg)...)

	return &cli.Command{
		Name:  "journal",
		Usage: "Generate an AI reflection over journal entries",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read journal file", goerr.V("path", inputPath))
			}

			var entries []model.JournalEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return goerr.Wrap(model.ErrParse, "journal file is not valid JSON", goerr.V("path", inputPath), goerr.V("cause", err.Error()))
			}

			uc, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " generating journal reflection..."
			sp.Start()
			text, err := uc.JournalReflection(ctx, entries, startDate, endDate)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "failed to generate journal reflection")
			}

			fmt.Fprintln(c.Root().Writer, text)
			return nil
		},
	}
}
