package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"
)

func headersCommand() *cli.Command {
	var (
		session string
		all     bool
	)

	return &cli.Command{
		Name:  "headers",
		Usage: "Print the request headers of one identity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "session",
				Aliases:     []string{"s"},
				Usage:       "Session key to derive the identity from",
				Destination: &session,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Include high-entropy client hints",
				Destination: &all,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, c, err := setup(cmd)
			if err != nil {
				return err
			}

			rec := c.Generate()
			if cmd.IsSet("session") {
				rec = c.GenerateSession(session)
			}

			h := rec.Headers()
			if all {
				h = rec.AllHeaders()
			}

			w := cmd.Root().Writer
			for _, name := range slices.Sorted(maps.Keys(h)) {
				if _, err := fmt.Fprintf(w, "%s: %s\n", name, h[name]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
