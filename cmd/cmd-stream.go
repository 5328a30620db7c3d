package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/smallnest/ringbuffer"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func streamCommand() *cli.Command {
	var limit int64

	return &cli.Command{
		Name:  "stream",
		Usage: "Stream identities as JSON lines until interrupted",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Stop after this many identities (0 streams forever)",
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, c, err := setup(cmd)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			rb := ringbuffer.New(cfg.Generator.BufferSize).SetBlocking(true).WithCancel(gctx)

			g.Go(func() error {
				defer rb.CloseWriter()

				enc := json.NewEncoder(rb)
				for n := int64(0); limit == 0 || n < limit; n++ {
					if gctx.Err() != nil {
						return nil
					}
					if err := enc.Encode(c.Generate()); err != nil {
						return fmt.Errorf("encoding record: %w", err)
					}
				}
				return nil
			})

			g.Go(func() error {
				n, err := io.Copy(cmd.Root().Writer, rb)
				slog.Debug("stream drained", "bytes", n)
				return err
			})

			if err := g.Wait(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
