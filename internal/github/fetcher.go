package github

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/gnomegl/relslurp/internal/models"
	"github.com/gnomegl/relslurp/internal/retry"
)

// Page is one page of repository summaries, most recently updated first.
type Page struct {
	Repos       []models.RepoSummary
	HasNextPage bool
	EndCursor   string
}

// Client is the upstream query surface the Fetcher drives. Implementations
// must return pages ordered by descending last-update time; early stop is
// only correct against that ordering.
type Client interface {
	ListPage(ctx context.Context, org, cursor string) (Page, error)
	GetRepo(ctx context.Context, org, name string) (models.RepoSummary, error)
}

// Fetcher pages through an organization's repositories sequentially,
// stopping early once repositories fall behind the cutoff date and
// filtering each page's embedded releases as it goes.
type Fetcher struct {
	client Client
	exec   *retry.Executor
	cfg    *Config
	log    zerolog.Logger
	sleep  func(time.Duration)
}

func NewFetcher(client Client, exec *retry.Executor, cfg *Config, log zerolog.Logger) *Fetcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Fetcher{client: client, exec: exec, cfg: cfg, log: log, sleep: time.Sleep}
}

// FetchAll returns every repository updated at or after since, with its
// release list filtered to publish timestamps at or after since. Any page
// failure that survives the retry policy aborts the whole fetch; already
// accumulated pages are discarded.
func (f *Fetcher) FetchAll(ctx context.Context, org string, since time.Time) ([]models.RepoSummary, error) {
	var (
		out    []models.RepoSummary
		cursor string
		pages  int
	)

	for {
		cur := cursor
		page, err := retry.Do(ctx, f.exec, "list repositories", func(ctx context.Context) (Page, error) {
			return f.client.ListPage(ctx, org, cur)
		})
		if err != nil {
			return nil, err
		}
		pages++

		stopped := false
		for _, repo := range page.Repos {
			// Repositories arrive newest-updated first, so the first one
			// behind the cutoff means everything after it is too.
			if f.cfg.EarlyStop && repo.UpdatedAt.Before(since) {
				f.log.Debug().
					Str("repo", repo.Name).
					Time("updated_at", repo.UpdatedAt).
					Time("cutoff", since).
					Msg("repository behind cutoff, stopping pagination")
				stopped = true
				break
			}
			repo.Releases = filterSince(repo.Releases, since)
			out = append(out, repo)
		}

		if stopped || !page.HasNextPage {
			break
		}
		cursor = page.EndCursor
		f.sleep(f.cfg.PageDelay)
	}

	f.log.Info().Str("org", org).Int("pages", pages).Int("repos", len(out)).Msg("repository fetch complete")
	return out, nil
}

// FetchNamed looks up the given repositories one by one. Individual
// failures are logged and skipped so one bad name does not sink the batch.
func (f *Fetcher) FetchNamed(ctx context.Context, org string, names []string) ([]models.RepoSummary, error) {
	var (
		out     []models.RepoSummary
		skipped []string
	)

	var bar *progressbar.ProgressBar
	if f.cfg.ShowProgress && len(names) > 1 {
		bar = progressbar.NewOptions(len(names),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Slurping releases[reset]"),
		)
	}

	for _, name := range names {
		n := name
		repo, err := retry.Do(ctx, f.exec, "get repository "+n, func(ctx context.Context) (models.RepoSummary, error) {
			return f.client.GetRepo(ctx, org, n)
		})
		if bar != nil {
			bar.Add(1)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.log.Warn().Str("repo", n).Err(err).Msg("skipping repository")
			skipped = append(skipped, n)
			continue
		}
		out = append(out, repo)
	}

	if len(skipped) > 0 {
		f.log.Warn().Strs("repos", skipped).Msg("repositories not found or not fetchable")
	}
	return out, nil
}

func filterSince(releases []models.RepoRelease, since time.Time) []models.RepoRelease {
	var kept []models.RepoRelease
	for _, r := range releases {
		if !r.PublishedAt.Before(since) {
			kept = append(kept, r)
		}
	}
	return kept
}
