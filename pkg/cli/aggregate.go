package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/habitloop/reflector/pkg/transform"
)

func aggregateCommand() *cli.Command {
	var (
		cfg        config
		inputPath  string
		outputPath string
		date       string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to JSON file containing the column-oriented snapshot",
			Value:       "savedData.json",
			Sources:     cli.EnvVars("REFLECTOR_INPUT"),
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path to write the aggregated data",
			Value:       "aggregated_data.json",
			Destination: &outputPath,
		},
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Print a single day record instead of writing the output file",
			Destination: &date,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "aggregate",
		Usage: "Invert a column-oriented snapshot into per-day composite records",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", inputPath))
			}

			var snap transform.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return goerr.Wrap(model.ErrParse, "snapshot is not valid JSON", goerr.V("path", inputPath), goerr.V("cause", err.Error()))
			}

			aggregated, err := transform.Aggregate(&snap)
			if err != nil {
				return err
			}

			if date != "" {
				day, err := aggregated.Day(date)
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(day, "", "  ")
				if err != nil {
					return goerr.Wrap(err, "failed to marshal day record")
				}
				fmt.Fprintln(c.Root().Writer, string(out))
				return nil
			}

			out, err := json.MarshalIndent(aggregated, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal aggregated data")
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write aggregated data", goerr.V("path", outputPath))
			}

			fmt.Fprintf(c.Root().Writer, "Aggregated %d days to %s\n", len(aggregated.DayData), outputPath)
			return nil
		},
	}
}
