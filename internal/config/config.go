// Package config provides configuration types and defaults for fete.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fete/internal/log"
)

// ProviderConfig configures one search backend.
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ProvidersConfig holds the per-category search backends.
type ProvidersConfig struct {
	Music    ProviderConfig `mapstructure:"music"`
	Food     ProviderConfig `mapstructure:"food"`
	Cocktail ProviderConfig `mapstructure:"cocktail"`
}

// SearchConfig holds search behavior options.
type SearchConfig struct {
	// MaxResults caps how many results a search requests and displays.
	MaxResults int `mapstructure:"max_results"`
	// CacheTTL is how long search results stay cached.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// CalendarConfig holds calendar export options.
type CalendarConfig struct {
	// LinkBase is the calendar service the per-party share link points at.
	LinkBase string `mapstructure:"link_base"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	ShowCounts    bool   `mapstructure:"show_counts"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Config holds all configuration options for fete.
type Config struct {
	Providers ProvidersConfig `mapstructure:"providers"`
	Search    SearchConfig    `mapstructure:"search"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	UI        UIConfig        `mapstructure:"ui"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// Defaults returns the configuration used when no config file exists.
// Provider base URLs default to empty, which selects each provider's
// built-in endpoint.
func Defaults() Config {
	return Config{
		Search: SearchConfig{
			MaxResults: 5,
			CacheTTL:   10 * time.Minute,
		},
		UI: UIConfig{
			ShowCounts:    true,
			MarkdownStyle: "dark",
		},
		Theme: ThemeConfig{
			Highlight: "#AD58B4",
			Subtle:    "#5C5C5C",
			Error:     "#F38BA8",
			Success:   "#A6E3A1",
		},
	}
}

// Validate checks option values that have a restricted domain.
func (c Config) Validate() error {
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.CacheTTL < 0 {
		return fmt.Errorf("search.cache_ttl cannot be negative")
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be dark or light, got %q", c.UI.MarkdownStyle)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written for new
// installs.
func DefaultConfigTemplate() string {
	return `# fete configuration
#
# Search backends. Leave base_url empty to use the built-in endpoints.
providers:
  music:
    base_url: ""
  food:
    base_url: ""
  cocktail:
    base_url: ""

search:
  # How many results to request and show per search.
  max_results: 5
  # How long search results stay cached.
  cache_ttl: 10m

calendar:
  # Calendar service the per-party share link points at.
  link_base: "http://evt.to"

ui:
  show_counts: true
  # Markdown style for recipe instructions: dark or light.
  markdown_style: dark

theme:
  highlight: "#AD58B4"
  subtle: "#5C5C5C"
  error: "#F38BA8"
  success: "#A6E3A1"
`
}

// WriteDefaultConfig creates a config file at the given path with
// default settings and comments. Creates the parent directory if it
// doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
