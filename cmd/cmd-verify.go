package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/stupside/uaforge/internal/inspect"
)

// verifyCommand returns the "verify" CLI subcommand.
func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Generate identities and check each one for internal consistency",
		Flags: []cli.Flag{countFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, c, err := setup(cmd)
			if err != nil {
				return err
			}

			n := count(cmd, cfg)
			failed := 0
			for range n {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec := c.Generate()
				if err := inspect.Verify(rec); err != nil {
					failed++
					slog.Warn("inconsistent identity", "user_agent", rec.UserAgent, "error", err)
				}
			}

			slog.Info("verification complete", "checked", n, "failed", failed, "seed", c.Seed())
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d identities are inconsistent", failed, n), 1)
			}
			return nil
		},
	}
}
