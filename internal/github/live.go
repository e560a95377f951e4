package github

import (
	"context"
	"strconv"

	gh "github.com/google/go-github/v57/github"

	"github.com/gnomegl/relslurp/internal/errs"
	"github.com/gnomegl/relslurp/internal/models"
)

// GithubClient implements Client against the GitHub REST API. Repository
// pages are requested sorted by update recency, which is what makes the
// fetcher's early stop sound.
type GithubClient struct {
	gh  *gh.Client
	cfg *Config
}

func NewGithubClient(client *gh.Client, cfg *Config) *GithubClient {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &GithubClient{gh: client, cfg: cfg}
}

func (c *GithubClient) ListPage(ctx context.Context, org, cursor string) (Page, error) {
	pageNum := 1
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil {
			return Page{}, errs.Newf(errs.CodeInvalidArgument, "bad page cursor %q", cursor)
		}
		pageNum = n
	}

	opt := &gh.RepositoryListByOrgOptions{
		Type:        "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: c.cfg.PerPage, Page: pageNum},
	}
	repos, resp, err := c.gh.Repositories.ListByOrg(ctx, org, opt)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return Page{}, errs.Newf(errs.CodeNotFound, "organization not found: %s", org)
		}
		return Page{}, translateErr(err, "list repositories")
	}

	page := Page{HasNextPage: resp.NextPage != 0}
	if resp.NextPage != 0 {
		page.EndCursor = strconv.Itoa(resp.NextPage)
	}
	for _, r := range repos {
		summary, err := c.summarize(ctx, org, r)
		if err != nil {
			return Page{}, err
		}
		page.Repos = append(page.Repos, summary)
	}
	return page, nil
}

func (c *GithubClient) GetRepo(ctx context.Context, org, name string) (models.RepoSummary, error) {
	r, resp, err := c.gh.Repositories.Get(ctx, org, name)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return models.RepoSummary{}, errs.Newf(errs.CodeNotFound, "repository not found: %s/%s", org, name)
		}
		return models.RepoSummary{}, translateErr(err, "get repository "+name)
	}
	return c.summarize(ctx, org, r)
}

// summarize attaches the repository's most recent releases. Drafts and
// releases that were never published are dropped here.
func (c *GithubClient) summarize(ctx context.Context, org string, r *gh.Repository) (models.RepoSummary, error) {
	rels, resp, err := c.gh.Repositories.ListReleases(ctx, org, r.GetName(), &gh.ListOptions{PerPage: c.cfg.MaxReleases})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			// releases disabled or repository gone mid-listing
			rels = nil
		} else {
			return models.RepoSummary{}, translateErr(err, "list releases for "+r.GetName())
		}
	}

	out := models.RepoSummary{
		Name:      r.GetName(),
		UpdatedAt: r.GetUpdatedAt().Time,
	}
	for _, rel := range rels {
		if rel.GetDraft() || rel.PublishedAt == nil {
			continue
		}
		out.Releases = append(out.Releases, models.RepoRelease{
			TagName:     rel.GetTagName(),
			Name:        rel.GetName(),
			PublishedAt: rel.GetPublishedAt().Time,
			Body:        rel.GetBody(),
			HTMLURL:     rel.GetHTMLURL(),
			Author:      rel.GetAuthor().GetLogin(),
			Prerelease:  rel.GetPrerelease(),
		})
	}
	return out, nil
}
