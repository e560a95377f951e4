package service

import (
	"strings"
	"time"

	"github.com/gnomegl/relslurp/internal/models"
)

// Warehouse schemas do not agree on column spellings, so each logical field
// has an ordered candidate list; the first present, non-empty value wins.
var (
	repoCols      = []string{"repository", "repo", "repo_name", "repository_name"}
	tagCols       = []string{"tag_name", "tag", "tagname", "version"}
	nameCols      = []string{"name", "release_name", "title"}
	publishedCols = []string{"published_at", "publishedat", "published", "release_date"}
	bodyCols      = []string{"description", "body", "notes", "release_notes"}
	urlCols       = []string{"url", "html_url", "link"}
	authorCols    = []string{"author", "author_login", "login", "released_by"}
	preCols       = []string{"prerelease", "is_prerelease", "pre_release"}
)

// releaseFromRow maps one loosely typed warehouse row into a Release.
// Rows missing repository, name (after tag fallback), or publish time are
// discarded rather than emitted half-empty.
func releaseFromRow(row map[string]any) (models.Release, bool) {
	repo := firstString(row, repoCols)
	tag := firstString(row, tagCols)
	name := firstString(row, nameCols)
	if name == "" {
		name = tag
	}
	published, ok := firstTime(row, publishedCols)
	if repo == "" || name == "" || !ok {
		return models.Release{}, false
	}

	return models.Release{
		Repository:  repo,
		TagName:     tag,
		Name:        name,
		PublishedAt: published.UTC().Format(time.RFC3339),
		Description: firstString(row, bodyCols),
		URL:         firstString(row, urlCols),
		Author:      firstString(row, authorCols),
		Prerelease:  firstBool(row, preCols),
	}, true
}

func firstString(row map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := row[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case *string:
			if v != nil {
				if s := strings.TrimSpace(*v); s != "" {
					return s
				}
			}
		case []byte:
			if s := strings.TrimSpace(string(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstTime(row map[string]any, keys []string) (time.Time, bool) {
	for _, k := range keys {
		switch v := row[k].(type) {
		case time.Time:
			if !v.IsZero() {
				return v, true
			}
		case *time.Time:
			if v != nil && !v.IsZero() {
				return *v, true
			}
		case string:
			if t, ok := parseTime(v); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.000", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func firstBool(row map[string]any, keys []string) bool {
	for _, k := range keys {
		switch v := row[k].(type) {
		case bool:
			return v
		case uint8:
			return v != 0
		case int64:
			return v != 0
		case uint64:
			return v != 0
		case string:
			s := strings.ToLower(strings.TrimSpace(v))
			if s == "true" || s == "1" || s == "yes" {
				return true
			}
			if s == "false" || s == "0" || s == "no" {
				return false
			}
		}
	}
	return false
}
