package warehouse

import (
	"fmt"
	"strings"

	"github.com/gnomegl/relslurp/internal/timeframe"
)

// DefaultTable is the release table queried when none is configured
const DefaultTable = "releases"

const tsFormat = "2006-01-02 15:04:05.000"

// BuildReleaseQuery renders the bulk release query for a window, optionally
// restricted to specific repositories. Both window bounds are inclusive.
func BuildReleaseQuery(table, org string, w timeframe.Window, repos []string) string {
	if table == "" {
		table = DefaultTable
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT repo, tag_name, name, published_at, body, html_url, author, prerelease FROM %s", table)
	fmt.Fprintf(&b, " WHERE org = '%s'", escape(org))
	fmt.Fprintf(&b, " AND published_at >= toDateTime64('%s', 3, 'UTC')", w.Start.UTC().Format(tsFormat))
	fmt.Fprintf(&b, " AND published_at <= toDateTime64('%s', 3, 'UTC')", w.End.UTC().Format(tsFormat))

	if len(repos) > 0 {
		quoted := make([]string, len(repos))
		for i, r := range repos {
			quoted[i] = "'" + escape(r) + "'"
		}
		fmt.Fprintf(&b, " AND repo IN (%s)", strings.Join(quoted, ", "))
	}

	b.WriteString(" ORDER BY repo, published_at")
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
