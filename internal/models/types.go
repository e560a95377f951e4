package models

import "time"

// RepoRelease is a single release as the fetch client returned it,
// before normalization. Name and Body may be empty.
type RepoRelease struct {
	TagName     string
	Name        string
	PublishedAt time.Time
	Body        string
	HTMLURL     string
	Author      string
	Prerelease  bool
}

// RepoSummary is one repository with its most recent releases embedded.
type RepoSummary struct {
	Name      string
	UpdatedAt time.Time
	Releases  []RepoRelease
}

// Release is the flattened caller-facing record. PublishedAt is RFC 3339.
type Release struct {
	Repository  string `json:"repository"`
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Prerelease  bool   `json:"prerelease"`
}
