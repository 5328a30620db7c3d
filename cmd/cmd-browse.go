package cmd

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/stupside/uaforge/internal/emulate"
)

// browseCommand returns the "browse" CLI subcommand.
func browseCommand() *cli.Command {
	var (
		targetURL      string
		session        string
		acceptLanguage string
	)

	return &cli.Command{
		Name:  "browse",
		Usage: "Open a page in Chrome under a generated identity and report what it sees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "session",
				Aliases:     []string{"s"},
				Usage:       "Session key to derive the identity from",
				Destination: &session,
			},
			&cli.StringFlag{
				Name:        "accept-language",
				Value:       "en-US,en;q=0.9",
				Usage:       "Accept-Language sent with every request",
				Destination: &acceptLanguage,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "url",
				Destination: &targetURL,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if targetURL == "" {
				return cli.Exit("url argument is required", 1)
			}

			cfg, c, err := setup(cmd)
			if err != nil {
				return err
			}

			rec := c.Generate()
			if cmd.IsSet("session") {
				rec = c.GenerateSession(session)
			}
			slog.Info("browsing", "url", targetURL, "browser", rec.MetaBrowser, "os", rec.MetaOS, "device", rec.MetaDevice)

			report, err := emulate.Browse(ctx, cfg.Browser, rec, targetURL, acceptLanguage)
			if err != nil {
				return err
			}

			if report.Matches(rec) {
				slog.Info("page observed the emulated identity")
			} else {
				slog.Warn("page observed a different identity", "user_agent", report.UserAgent, "platform", report.Platform)
			}

			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
