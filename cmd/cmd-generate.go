package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/stupside/uaforge/internal/identity"
)

// output is the JSON line written for each record.
type output struct {
	identity.Record
	Headers map[string]string `json:"headers,omitempty"`
}

func generateCommand() *cli.Command {
	var (
		sessions    []string
		withHeaders bool
		uaOnly      bool
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate identities as JSON lines",
		Flags: []cli.Flag{
			countFlag(),
			&cli.StringSliceFlag{
				Name:        "session",
				Aliases:     []string{"s"},
				Usage:       "Generate the reproducible identity of a session key (repeatable)",
				Destination: &sessions,
			},
			&cli.BoolFlag{
				Name:        "headers",
				Usage:       "Include the request headers of each identity",
				Destination: &withHeaders,
			},
			&cli.BoolFlag{
				Name:        "ua",
				Usage:       "Print only the User-Agent string",
				Destination: &uaOnly,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, c, err := setup(cmd)
			if err != nil {
				return err
			}

			var records []identity.Record
			if len(sessions) > 0 {
				records, err = c.GenerateBatch(ctx, sessions, cfg.Generator.Workers)
				if err != nil {
					return err
				}
			} else {
				n := count(cmd, cfg)
				if n < 1 {
					return cli.Exit("count must be at least 1", 1)
				}
				records = make([]identity.Record, n)
				for i := range records {
					records[i] = c.Generate()
				}
			}

			w := cmd.Root().Writer
			enc := json.NewEncoder(w)
			for _, rec := range records {
				if uaOnly {
					if _, err := fmt.Fprintln(w, rec.UserAgent); err != nil {
						return err
					}
					continue
				}
				out := output{Record: rec}
				if withHeaders {
					out.Headers = rec.Headers()
				}
				if err := enc.Encode(out); err != nil {
					return fmt.Errorf("encoding record: %w", err)
				}
			}
			return nil
		},
	}
}
