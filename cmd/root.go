package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fete/internal/app"
	"fete/internal/cachemanager"
	"fete/internal/config"
	"fete/internal/log"
	"fete/internal/mode"
	"fete/internal/party"
	"fete/internal/search"
	"fete/internal/tracing"
	"fete/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "fete",
	Short:   "A terminal ui for planning parties",
	Long:    `A terminal user interface for planning parties: pick cocktails, food, and music videos, then publish to your calendar.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/fete/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write debug logs and traces to .fete/ and enable the log tail (Ctrl+L)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("search.max_results", defaults.Search.MaxResults)
	viper.SetDefault("search.cache_ttl", defaults.Search.CacheTTL)
	viper.SetDefault("ui.show_counts", defaults.UI.ShowCounts)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .fete/config.yaml (current directory)
		// 2. ~/.config/fete/config.yaml (user config)
		if _, err := os.Stat(".fete/config.yaml"); err == nil {
			viper.SetConfigFile(".fete/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "fete"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .fete/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".fete/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// buildProviders assembles the per-category search stack: HTTP backend,
// read-through cache, and a tracing wrapper.
func buildProviders(cfg config.Config) party.Providers {
	cache := cachemanager.NewInMemoryCacheManager[string, []*party.Item](
		"search", cfg.Search.CacheTTL, 30*time.Minute)

	wrap := func(cat party.Category, inner party.Provider) party.Provider {
		return search.NewTracedProvider(cat,
			search.NewCachedProvider(cat, inner, cache, cfg.Search.CacheTTL))
	}

	return party.Providers{
		Music:    wrap(party.CategoryMusic, search.NewMusicProvider(cfg.Providers.Music.BaseURL, nil)),
		Food:     wrap(party.CategoryFood, search.NewFoodProvider(cfg.Providers.Food.BaseURL, nil)),
		Cocktail: wrap(party.CategoryCocktail, search.NewCocktailProvider(cfg.Providers.Cocktail.BaseURL, nil)),
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)

	if debugMode {
		if err := os.MkdirAll(".fete", 0o755); err != nil {
			return fmt.Errorf("creating debug directory: %w", err)
		}
		cleanup, err := log.InitWithTeaLog(filepath.Join(".fete", "debug.log"), "fete")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		traceFile, err := os.Create(filepath.Join(".fete", "traces.log"))
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer func() { _ = traceFile.Close() }()
		shutdown, err := tracing.Init(traceFile)
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	providers := buildProviders(cfg)
	services := mode.Services{
		Registry:  party.NewRegistry(providers),
		Providers: providers,
		Config:    &cfg,
	}

	// Mouse zones are global; every clickable view marks into this.
	zone.NewGlobal()
	defer zone.Close()

	model := app.New(services, debugMode)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
