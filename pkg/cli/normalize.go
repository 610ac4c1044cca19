package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func normalizeCommand() *cli.Command {
	var (
		cfg        config
		inputPath  string
		outputPath string
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
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path to write the normalized data",
			Value:       "cleaned_data.json",
			Destination: &outputPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "normalize",
		Usage: "Normalize a raw export into the canonical per-category record set",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()

			export, err := readExport(inputPath)
			if err != nil {
				return err
			}
			if err := dumpNormalized(export, outputPath); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Normalized data written to %s\n", outputPath)
			return nil
		},
	}
}
