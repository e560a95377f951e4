// Package service assembles normalized release records for an organization.
// It prefers the warehouse bulk path when one is configured and degrades to
// the paginated API fetch when the bulk path is absent or fails.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gnomegl/relslurp/internal/github"
	"github.com/gnomegl/relslurp/internal/models"
	"github.com/gnomegl/relslurp/internal/timeframe"
	"github.com/gnomegl/relslurp/internal/warehouse"
)

// WarehouseOpener opens a warehouse connection for one bulk attempt.
// Lifecycle is per call: the service closes whatever it opens.
type WarehouseOpener func(ctx context.Context) (warehouse.Querier, error)

// Service is the release assembler
type Service struct {
	fetcher *github.Fetcher
	log     zerolog.Logger
	now     func() time.Time

	openWarehouse WarehouseOpener // nil means no bulk source configured
	table         string
}

// Option customizes a Service
type Option func(*Service)

// WithWarehouse configures the bulk data source
func WithWarehouse(open WarehouseOpener, table string) Option {
	return func(s *Service) {
		s.openWarehouse = open
		s.table = table
	}
}

// WithClock pins the service clock, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(fetcher *github.Fetcher, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{fetcher: fetcher, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetReleases resolves the timeframe and returns every release of the
// organization published inside the window, both bounds inclusive. A
// non-empty repos list restricts the fetch to those repositories. Records
// come back in repository encounter order, releases in upstream order.
func (s *Service) GetReleases(ctx context.Context, org string, d timeframe.Descriptor, repos []string) ([]models.Release, error) {
	w, err := timeframe.Resolve(d, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Debug().Time("start", w.Start).Time("end", w.End).Str("org", org).Msg("window resolved")

	if s.openWarehouse != nil {
		out, bulkErr := s.bulk(ctx, org, w, repos)
		if bulkErr == nil {
			s.log.Info().Int("releases", len(out)).Msg("bulk path served the window")
			return out, nil
		}
		// degrade, not fail: the paginated path can still answer
		s.log.Warn().Err(bulkErr).Msg("bulk path failed, falling back to api fetch")
	}

	var summaries []models.RepoSummary
	if len(repos) > 0 {
		summaries, err = s.fetcher.FetchNamed(ctx, org, repos)
	} else {
		summaries, err = s.fetcher.FetchAll(ctx, org, w.Start)
	}
	if err != nil {
		return nil, err
	}

	var out []models.Release
	for _, repo := range summaries {
		for _, rel := range repo.Releases {
			if !w.Contains(rel.PublishedAt) {
				continue
			}
			out = append(out, normalize(repo.Name, rel))
		}
	}
	return out, nil
}

func (s *Service) bulk(ctx context.Context, org string, w timeframe.Window, repos []string) ([]models.Release, error) {
	q, err := s.openWarehouse(ctx)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	rows, err := q.Query(ctx, warehouse.BuildReleaseQuery(s.table, org, w, repos))
	if err != nil {
		return nil, err
	}

	var out []models.Release
	for _, row := range rows {
		rel, ok := releaseFromRow(row)
		if !ok {
			s.log.Debug().Interface("row", row).Msg("discarding incomplete warehouse row")
			continue
		}
		out = append(out, rel)
	}
	return out, nil
}

func normalize(repo string, r models.RepoRelease) models.Release {
	name := r.Name
	if name == "" {
		name = r.TagName
	}
	return models.Release{
		Repository:  repo,
		TagName:     r.TagName,
		Name:        name,
		PublishedAt: r.PublishedAt.UTC().Format(time.RFC3339),
		Description: r.Body,
		URL:         r.HTMLURL,
		Author:      r.Author,
		Prerelease:  r.Prerelease,
	}
}
