package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	ucli "github.com/urfave/cli/v2"

	"github.com/gnomegl/relslurp/internal/art"
	"github.com/gnomegl/relslurp/internal/auth"
	"github.com/gnomegl/relslurp/internal/cli"
	"github.com/gnomegl/relslurp/internal/config"
	"github.com/gnomegl/relslurp/internal/display"
	"github.com/gnomegl/relslurp/internal/github"
	"github.com/gnomegl/relslurp/internal/logging"
	"github.com/gnomegl/relslurp/internal/retry"
	"github.com/gnomegl/relslurp/internal/service"
	"github.com/gnomegl/relslurp/internal/warehouse"
)

func runApp(c *ucli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil || cfg == nil {
		return err
	}
	descriptor, err := cfg.Timeframe()
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger := logging.Get().With().Str("org", cfg.Org).Logger()

	client, err := auth.SetupGitHubClient(c, ctx)
	if err != nil {
		return err
	}

	fetchCfg := github.DefaultConfig()
	fetchCfg.ShowProgress = !cfg.JSON

	// One breaker per run, shared across every page and lookup
	exec := retry.NewExecutor(retry.DefaultPolicy(), retry.NewBreaker(3, time.Minute), logger)
	fetcher := github.NewFetcher(github.NewGithubClient(client, fetchCfg), exec, fetchCfg, logger)

	var opts []service.Option
	if dsn := c.String("warehouse"); dsn != "" {
		table := c.String("warehouse-table")
		opts = append(opts, service.WithWarehouse(func(ctx context.Context) (warehouse.Querier, error) {
			return warehouse.Open(ctx, dsn)
		}, table))
	}
	svc := service.New(fetcher, logger, opts...)

	if !cfg.JSON {
		color.Blue("Collecting releases for organization: %s", cfg.Org)
	}

	releases, err := svc.GetReleases(ctx, cfg.Org, descriptor, cfg.Repos)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return display.WriteNDJSON(os.Stdout, releases)
	}
	display.Releases(releases, cfg.ShowNotes)
	return nil
}

func main() {
	log.SetFlags(0)
	logging.Init(logging.FromEnv())

	app := cli.NewApp(runApp)
	app.Before = func(c *ucli.Context) error {
		if c.Args().Len() == 0 && !c.Bool("help") && !c.Bool("version") {
			art.PrintLogo()
			ucli.ShowAppHelp(c)
			return ucli.Exit("", 1)
		}
		if !c.Bool("help") && !c.Bool("version") && !c.Bool("json") {
			art.PrintLogo()
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
