package config

import "time"

// Config represents the application configuration
type Config struct {
	Search SearchConfig `toml:"search"`
	Fetch  FetchConfig  `toml:"fetch"`
	Cache  CacheConfig  `toml:"cache"`
}

// SearchConfig holds the user profile and ranking preferences.
type SearchConfig struct {
	Skills     []string `toml:"skills"`
	Location   string   `toml:"location"`
	MinStipend float64  `toml:"min_stipend"`
	MaxAgeDays int      `toml:"max_age_days"` // 999 means unlimited
	TopN       int      `toml:"top_n"`
}

// FetchConfig tunes the board-fetching collaborator.
type FetchConfig struct {
	Sources    []string `toml:"sources"`
	MaxResults int      `toml:"max_results"`
	DelayMs    int      `toml:"delay_ms"`
}

// Delay returns the inter-query pause as a duration.
func (f FetchConfig) Delay() time.Duration {
	return time.Duration(f.DelayMs) * time.Millisecond
}

// CacheConfig contains posting cache settings.
type CacheConfig struct {
	Path       string `toml:"path"`
	MaxAgeDays int    `toml:"max_age_days"` // prune cached postings older than this
}

// MaxAge returns the cache retention as a duration.
func (c CacheConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Location:   "Remote",
			MinStipend: 0,
			MaxAgeDays: 7,
			TopN:       25,
		},
		Fetch: FetchConfig{
			Sources:    []string{"linkedin", "remotive"},
			MaxResults: 100,
			DelayMs:    2000,
		},
		Cache: CacheConfig{
			Path:       "~/.local/share/internmatch/postings.db",
			MaxAgeDays: 30,
		},
	}
}
