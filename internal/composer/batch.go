package composer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stupside/uaforge/internal/identity"
)

// GenerateBatch generates one session-bound record per key, running at most
// limit draws concurrently (limit <= 0 means unbounded). Output order follows
// keys. The only error is the context's, when it ends before every record
// is drawn.
func (c *Composer) GenerateBatch(ctx context.Context, keys []string, limit int) ([]identity.Record, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	records := make([]identity.Record, len(keys))
	for i, key := range keys {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = c.GenerateSession(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
