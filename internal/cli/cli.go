package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/gnomegl/relslurp/internal/utils"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options] <organization>

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "relslurp",
		Usage:   "Collect recently published releases across an organization's repositories",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{"RELSLURP_GITHUB_TOKEN"},
			},
			&cli.IntFlag{
				Name:  "hours",
				Usage: "Look back this many hours from now",
			},
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Look back this many calendar days ending today (max 7)",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Collect releases published on this day (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Window start day (YYYY-MM-DD), requires --to",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Window end day (YYYY-MM-DD), requires --from",
			},
			&cli.StringFlag{
				Name:    "repos",
				Aliases: []string{"r"},
				Usage:   "Comma-separated repository names to restrict the fetch to",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Emit NDJSON instead of the colorized listing",
			},
			&cli.BoolFlag{
				Name:    "notes",
				Aliases: []string{"n"},
				Usage:   "Show the first line of each release's notes",
			},
			&cli.StringFlag{
				Name:    "warehouse",
				Usage:   "ClickHouse DSN for the bulk query path",
				EnvVars: []string{"RELSLURP_CLICKHOUSE_DSN"},
			},
			&cli.StringFlag{
				Name:  "warehouse-table",
				Usage: "Release table queried on the bulk path",
			},
		},
		Action:    action,
		ArgsUsage: "<organization>",
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
