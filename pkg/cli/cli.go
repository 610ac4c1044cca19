package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "reflector",
		Usage: "AI reflections over personal habit-tracking data",
		Commands: []*cli.Command{
			serveCommand(),
			weeklyCommand(),
			thoughtsCommand(),
			journalCommand(),
			normalizeCommand(),
			aggregateCommand(),
			pillarsCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
