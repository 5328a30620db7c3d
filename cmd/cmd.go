package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stupside/uaforge/internal/app"
	"github.com/stupside/uaforge/internal/catalog"
	"github.com/stupside/uaforge/internal/composer"
	"github.com/stupside/uaforge/internal/version"
)

// Root returns the root CLI command.
func Root() *cli.Command {
	var (
		configPath string
		catalogDir string
		seed       uint64
	)

	return &cli.Command{
		Name:    "uaforge",
		Usage:   "Synthesize statistically realistic browser identities",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to configuration file",
				Value:       app.DefaultPath,
				Destination: &configPath,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "Directory of catalog JSON files (default: bundled data)",
				Destination: &catalogDir,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "Base seed (default: derived from the clock)",
				Destination: &seed,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := app.Load(configPath, cmd.IsSet("config"))
			if err != nil {
				return ctx, err
			}
			if cmd.IsSet("catalog") {
				cfg.Catalog.Dir = catalogDir
			}
			if cmd.IsSet("seed") {
				cfg.Generator.Seed = &seed
			}

			cat, err := loadCatalog(cfg.Catalog.Dir)
			if err != nil {
				return ctx, err
			}
			slog.DebugContext(ctx, "catalog ready", "dir", cfg.Catalog.Dir, "candidates", cat.Len())

			cmd.Metadata["config"] = cfg
			cmd.Metadata["catalog"] = cat
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCommand(),
			headersCommand(),
			streamCommand(),
			statsCommand(),
			verifyCommand(),
			catalogCommand(),
			browseCommand(),
			{
				Name:  "info",
				Usage: "Print build information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					slog.Info("build",
						"version", version.Version,
						"commit", version.Commit,
						"build_time", version.BuildTime,
					)
					return nil
				},
			},
		},
		Metadata: map[string]any{},
	}
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Default()
	}
	return catalog.LoadDir(dir)
}

// catalogFrom extracts the catalog loaded by the root command.
func catalogFrom(cmd *cli.Command) (*catalog.Catalog, error) {
	cat, ok := cmd.Root().Metadata["catalog"].(*catalog.Catalog)
	if !ok {
		return nil, fmt.Errorf("catalog not initialized")
	}
	return cat, nil
}

// setup returns the configuration and a composer seeded from it.
func setup(cmd *cli.Command) (*app.Config, *composer.Composer, error) {
	cfg, err := app.ConfigFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalogFrom(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := []composer.Option{composer.WithLogger(slog.Default())}
	if cfg.Generator.Seed != nil {
		opts = append(opts, composer.WithSeed(*cfg.Generator.Seed))
	}
	c := composer.New(cat, opts...)
	slog.Debug("composer ready", "seed", c.Seed())
	return cfg, c, nil
}

// count returns the --count flag when set, else the configured count.
func count(cmd *cli.Command, cfg *app.Config) int {
	if cmd.IsSet("count") {
		return int(cmd.Int64("count"))
	}
	return cfg.Generator.Count
}

func countFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "Number of identities (default: generator.count)",
	}
}

var titleCaser = cases.Title(language.English)

// label renders a lowercase key for display.
func label(s string) string {
	return titleCaser.String(s)
}
