package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gnomegl/relslurp/internal/timeframe"
)

func window(t *testing.T) timeframe.Window {
	t.Helper()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w, err := timeframe.Resolve(timeframe.Date(now.AddDate(0, 0, -1)), now)
	require.NoError(t, err)
	return w
}

func TestBuildReleaseQuery(t *testing.T) {
	t.Parallel()

	got := BuildReleaseQuery("", "acme", window(t), nil)
	require.Contains(t, got, "FROM releases")
	require.Contains(t, got, "WHERE org = 'acme'")
	require.Contains(t, got, "published_at >= toDateTime64('2025-06-14 00:00:00.000', 3, 'UTC')")
	require.Contains(t, got, "published_at <= toDateTime64('2025-06-14 23:59:59.999', 3, 'UTC')")
	require.NotContains(t, got, "repo IN")
	require.Contains(t, got, "ORDER BY repo, published_at")
}

func TestBuildReleaseQueryRepoFilter(t *testing.T) {
	t.Parallel()

	got := BuildReleaseQuery("org_releases", "acme", window(t), []string{"api", "cli"})
	require.Contains(t, got, "FROM org_releases")
	require.Contains(t, got, "repo IN ('api', 'cli')")
}

func TestBuildReleaseQueryEscapes(t *testing.T) {
	t.Parallel()

	got := BuildReleaseQuery("", "o'brien", window(t), []string{`we'ird\name`})
	require.Contains(t, got, `org = 'o\'brien'`)
	require.Contains(t, got, `repo IN ('we\'ird\\name')`)
}
