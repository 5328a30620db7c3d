package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Sample identities and compare observed shares with the catalog",
		Flags: []cli.Flag{countFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, c, err := setup(cmd)
			if err != nil {
				return err
			}
			cat, err := catalogFrom(cmd)
			if err != nil {
				return err
			}

			n := count(cmd, cfg)
			if n < 1 {
				return cli.Exit("count must be at least 1", 1)
			}
			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("stats-%d", i)
			}

			records, err := c.GenerateBatch(ctx, keys, cfg.Generator.Workers)
			if err != nil {
				return err
			}

			families := map[string]int{}
			systems := map[string]int{}
			devices := map[string]int{}
			for _, rec := range records {
				families[string(rec.MetaBrowser)]++
				systems[string(rec.MetaOS)]++
				devices[string(rec.MetaDevice)]++
			}

			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "FAMILY\tOBSERVED\tEXPECTED\n")
			for _, f := range cat.Families() {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", label(string(f)), share(families[string(f)], n), cat.FamilyShare(f))
			}
			writeShares(tw, "OS", systems, n)
			writeShares(tw, "DEVICE", devices, n)
			return tw.Flush()
		},
	}
}

func share(hits, total int) float64 {
	return float64(hits) / float64(total)
}

func writeShares(w io.Writer, title string, counts map[string]int, total int) {
	fmt.Fprintf(w, "\t\t\n%s\tOBSERVED\t\n", title)
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "%s\t%.4f\t\n", label(k), share(counts[k], total))
	}
}
