package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gnomegl/relslurp/internal/errs"
	"github.com/gnomegl/relslurp/internal/timeframe"
)

const dateLayout = "2006-01-02"

type AppConfig struct {
	Org       string
	Hours     int
	Days      int
	Date      string
	From      string
	To        string
	Repos     []string
	JSON      bool
	ShowNotes bool
}

func ParseConfig(c *cli.Context) (*AppConfig, error) {
	if c.NArg() == 0 {
		return nil, cli.ShowAppHelp(c)
	}

	cfg := &AppConfig{
		Org:       c.Args().First(),
		Hours:     c.Int("hours"),
		Days:      c.Int("days"),
		Date:      c.String("date"),
		From:      c.String("from"),
		To:        c.String("to"),
		JSON:      c.Bool("json"),
		ShowNotes: c.Bool("notes"),
	}
	if repos := c.String("repos"); repos != "" {
		for _, r := range strings.Split(repos, ",") {
			if r = strings.TrimSpace(r); r != "" {
				cfg.Repos = append(cfg.Repos, r)
			}
		}
	}
	return cfg, nil
}

// Timeframe builds the descriptor from the mutually exclusive timeframe
// flags. A bare invocation defaults to the last day.
func (cfg *AppConfig) Timeframe() (timeframe.Descriptor, error) {
	set := 0
	if cfg.Hours > 0 {
		set++
	}
	if cfg.Days > 0 {
		set++
	}
	if cfg.Date != "" {
		set++
	}
	if cfg.From != "" || cfg.To != "" {
		set++
	}
	if set > 1 {
		return timeframe.Descriptor{}, errs.New(errs.CodeInvalidArgument, "use only one of --hours, --days, --date, --from/--to")
	}

	switch {
	case cfg.Hours > 0:
		return timeframe.Hours(cfg.Hours), nil
	case cfg.Days > 0:
		return timeframe.Days(cfg.Days), nil
	case cfg.Date != "":
		d, err := time.Parse(dateLayout, cfg.Date)
		if err != nil {
			return timeframe.Descriptor{}, errs.Wrapf(err, errs.CodeInvalidArgument, "bad --date %q, want YYYY-MM-DD", cfg.Date)
		}
		return timeframe.Date(d), nil
	case cfg.From != "" && cfg.To != "":
		from, err := time.Parse(dateLayout, cfg.From)
		if err != nil {
			return timeframe.Descriptor{}, errs.Wrapf(err, errs.CodeInvalidArgument, "bad --from %q, want YYYY-MM-DD", cfg.From)
		}
		to, err := time.Parse(dateLayout, cfg.To)
		if err != nil {
			return timeframe.Descriptor{}, errs.Wrapf(err, errs.CodeInvalidArgument, "bad --to %q, want YYYY-MM-DD", cfg.To)
		}
		return timeframe.Range(from, to), nil
	case cfg.From != "" || cfg.To != "":
		return timeframe.Descriptor{}, errs.New(errs.CodeInvalidArgument, "--from and --to must be used together")
	default:
		return timeframe.Days(1), nil
	}
}
