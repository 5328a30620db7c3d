package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/stupside/uaforge/internal/identity"
)

// catalogCommand returns the "catalog" CLI subcommand.
func catalogCommand() *cli.Command {
	var list bool

	return &cli.Command{
		Name:  "catalog",
		Usage: "Summarize the loaded catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "candidates",
				Usage:       "List every candidate with its share",
				Destination: &list,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := catalogFrom(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "candidates\t%d\t\n", cat.Len())

			fmt.Fprintf(tw, "\t\t\nFAMILY\tSHARE\tHISTORY\n")
			for _, f := range cat.Families() {
				fmt.Fprintf(tw, "%s\t%.4f\t%t\n", label(string(f)), cat.FamilyShare(f), cat.HasVersionHistory(f))
			}

			fmt.Fprintf(tw, "\t\t\nDEVICES\tMODELS\t\n")
			for _, category := range cat.DeviceCategories() {
				fmt.Fprintf(tw, "%s\t%d\t\n", category, len(cat.DeviceModels(category)))
			}

			if list {
				fmt.Fprintf(tw, "\t\t\nCANDIDATE\tDEVICE\tSHARE\n")
				for _, cand := range cat.Candidates() {
					name := fmt.Sprintf("%s %s", cand.Family, cand.Version)
					if cand.OS != identity.OSUnknown {
						name += " (" + string(cand.OS) + ")"
					}
					fmt.Fprintf(tw, "%s\t%s\t%g\n", name, cand.Device, cand.Share)
				}
			}
			return tw.Flush()
		},
	}
}
