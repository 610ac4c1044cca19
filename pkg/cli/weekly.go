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
	"github.com/habitloop/reflector/pkg/transform"
)

func weeklyCommand() *cli.Command {
	var (
		cfg        config
		inputPath  string
		dumpPath   string
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
		&cli.StringFlag{
			Name:        "dump-cleaned",
			Usage:       "Also write the normalized data to this path",
			Destination: &dumpPath,
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
		Name:  "weekly",
		Usage: "Generate the weekly mood recap from a raw export file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			export, err := readExport(inputPath)
			if err != nil {
				return err
			}

			if dumpPath != "" {
				if err := dumpNormalized(export, dumpPath); err != nil {
					return err
				}
			}

			uc, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " generating mood recap..."
			sp.Start()
			record, err := uc.MoodRecap(ctx, export)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "failed to generate mood recap")
			}

			if !skipUpsert {
				if _, err := uc.Store(ctx, record); err != nil {
					return goerr.Wrap(err, "failed to store mood recap")
				}
			}

			fmt.Fprintf(c.Root().Writer, "%s (%s)\n\n%s\n", record.Type, record.Date, record.Summary)
			return nil
		},
	}
}

func readExport(path string) (*transform.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read export file", goerr.V("path", path))
	}

	var export transform.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, goerr.Wrap(model.ErrParse, "export is not valid JSON", goerr.V("path", path), goerr.V("cause", err.Error()))
	}
	return &export, nil
}

func dumpNormalized(export *transform.Export, path string) error {
	normalized, err := transform.Normalize(export)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal normalized data")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write normalized data", goerr.V("path", path))
	}
	return nil
}
