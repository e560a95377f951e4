package github

import "time"

// Config holds tuning for release fetching
type Config struct {
	PerPage      int           // repositories per page
	MaxReleases  int           // most recent releases pulled per repository
	PageDelay    time.Duration // courtesy pause between pages
	EarlyStop    bool          // stop paging once repositories fall behind the cutoff
	ShowProgress bool          // terminal progress bar for named lookups
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PerPage:     100,
		MaxReleases: 20,
		PageDelay:   500 * time.Millisecond,
		EarlyStop:   true,
	}
}
