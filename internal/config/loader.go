package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not an
// error: defaults are returned so the CLI works without any setup.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.expandPaths(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

func (c *Config) expandPaths() error {
	var err error

	c.Cache.Path, err = expandPath(c.Cache.Path)
	if err != nil {
		return err
	}

	return nil
}

// knownSources are the fetch sources this build can construct.
var knownSources = map[string]bool{"linkedin": true, "remotive": true}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Search.MinStipend < 0 {
		errs = append(errs, errors.New("search.min_stipend must not be negative"))
	}
	if c.Search.MaxAgeDays < 1 {
		errs = append(errs, errors.New("search.max_age_days must be at least 1 (999 means unlimited)"))
	}
	if c.Search.TopN < 1 || c.Search.TopN > 500 {
		errs = append(errs, errors.New("search.top_n must be between 1 and 500"))
	}

	if len(c.Fetch.Sources) == 0 {
		errs = append(errs, errors.New("fetch.sources must name at least one source"))
	}
	for _, src := range c.Fetch.Sources {
		if !knownSources[src] {
			errs = append(errs, fmt.Errorf("unknown fetch source %q (use linkedin, remotive)", src))
		}
	}
	if c.Fetch.MaxResults < 1 || c.Fetch.MaxResults > 1000 {
		errs = append(errs, errors.New("fetch.max_results must be between 1 and 1000"))
	}
	if c.Fetch.DelayMs < 0 {
		errs = append(errs, errors.New("fetch.delay_ms must not be negative"))
	}

	if c.Cache.Path == "" {
		errs = append(errs, errors.New("cache.path is required"))
	}
	if c.Cache.MaxAgeDays < 1 {
		errs = append(errs, errors.New("cache.max_age_days must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
