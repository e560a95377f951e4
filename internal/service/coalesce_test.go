package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReleaseFromRowCoalescing(t *testing.T) {
	t.Parallel()

	published := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	row := map[string]any{
		"repository_name": "api",
		"version":         "v1.2.3",
		"release_notes":   "fixed things",
		"link":            "https://x/v1.2.3",
		"released_by":     "dev2",
		"release_date":    published,
		"pre_release":     "yes",
	}

	rel, ok := releaseFromRow(row)
	require.True(t, ok)
	require.Equal(t, "api", rel.Repository)
	require.Equal(t, "v1.2.3", rel.TagName)
	require.Equal(t, "v1.2.3", rel.Name)
	require.Equal(t, "fixed things", rel.Description)
	require.Equal(t, "https://x/v1.2.3", rel.URL)
	require.Equal(t, "dev2", rel.Author)
	require.True(t, rel.Prerelease)
	require.Equal(t, "2025-06-14T09:00:00Z", rel.PublishedAt)
}

func TestReleaseFromRowPriorityOrder(t *testing.T) {
	t.Parallel()

	// earlier candidates win over later spellings
	row := map[string]any{
		"repository":   "first",
		"repo":         "second",
		"tag_name":     "v1",
		"published_at": time.Now().UTC(),
	}
	rel, ok := releaseFromRow(row)
	require.True(t, ok)
	require.Equal(t, "first", rel.Repository)
}

func TestReleaseFromRowSkipsEmptyCandidates(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"repository":   "  ",
		"repo":         "api",
		"tag_name":     "v1",
		"published_at": "2025-06-14 09:00:00",
	}
	rel, ok := releaseFromRow(row)
	require.True(t, ok)
	require.Equal(t, "api", rel.Repository, "blank values do not satisfy a candidate")
}

func TestParseTimeLayouts(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"2025-06-14T09:00:00Z",
		"2025-06-14T09:00:00.123Z",
		"2025-06-14 09:00:00.000",
		"2025-06-14 09:00:00",
		"2025-06-14",
	} {
		_, ok := parseTime(s)
		require.True(t, ok, "layout %q", s)
	}
	_, ok := parseTime("not a date")
	require.False(t, ok)
}

func TestFirstBoolShapes(t *testing.T) {
	t.Parallel()

	keys := []string{"prerelease"}
	require.True(t, firstBool(map[string]any{"prerelease": true}, keys))
	require.True(t, firstBool(map[string]any{"prerelease": uint8(1)}, keys))
	require.True(t, firstBool(map[string]any{"prerelease": "1"}, keys))
	require.False(t, firstBool(map[string]any{"prerelease": uint8(0)}, keys))
	require.False(t, firstBool(map[string]any{"prerelease": "false"}, keys))
	require.False(t, firstBool(map[string]any{}, keys))
}
